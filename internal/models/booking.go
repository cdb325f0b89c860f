package models

import "time"

// Booking keeps ClientName and TrainerName as they were when the booking was
// made. Later profile renames do not touch existing bookings.
type Booking struct {
	Seq uint64 `gorm:"autoIncrement;uniqueIndex" json:"-"`

	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID   string `gorm:"size:36;index;not null" json:"clientId"`
	ClientName string `gorm:"size:100" json:"clientName"`

	TrainerID   string `gorm:"size:36;index;not null" json:"trainerId"`
	TrainerName string `gorm:"size:100" json:"trainerName"`

	Date        string  `gorm:"size:10;not null" json:"date"`
	Time        string  `gorm:"size:5;not null" json:"time"`
	SessionType string  `gorm:"size:20;not null" json:"type"`
	Notes       string  `gorm:"size:255" json:"notes"`
	Price       float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
