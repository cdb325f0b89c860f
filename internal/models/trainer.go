package models

import "time"

// Trainer is the public profile of a user with RoleTrainer. UserID doubles as
// the trainer id used by bookings and messages.
type Trainer struct {
	Seq uint64 `gorm:"autoIncrement;uniqueIndex" json:"-"`

	UserID string `gorm:"primaryKey;size:36" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`

	Specialties     []string `gorm:"serializer:json;type:jsonb" json:"specialties"`
	Location        string   `gorm:"size:100" json:"location"`
	PricePerSession float64  `json:"pricePerSession"`
	ExperienceYears int      `json:"experienceYears"`
	Bio             string   `gorm:"size:300" json:"bio"`
	AvatarURL       string   `gorm:"size:255" json:"avatarUrl"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	UpdatedAt time.Time `json:"updatedAt"`
}
