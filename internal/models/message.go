package models

import "time"

type Message struct {
	Seq uint64 `gorm:"autoIncrement;uniqueIndex" json:"-"`

	ID string `gorm:"primaryKey;size:36" json:"id"`

	SenderID   string `gorm:"size:36;index;not null" json:"senderId"`
	SenderName string `gorm:"size:100" json:"senderName"`

	ReceiverID   string `gorm:"size:36;index;not null" json:"receiverId"`
	ReceiverName string `gorm:"size:100" json:"receiverName"`

	Subject string `gorm:"size:150" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"createdAt"`
}
