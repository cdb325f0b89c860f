package models

import "time"

type Role string

const (
	RoleClient  Role = "client"
	RoleTrainer Role = "trainer"
)

type User struct {
	Seq uint64 `gorm:"autoIncrement;uniqueIndex" json:"-"`

	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"passwordHash,omitempty"`
	Role         Role   `gorm:"size:20;not null;default:'client'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the credential so the value can be sent to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
