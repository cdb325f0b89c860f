package dto

import "github.com/BruksfildServices01/trainer-marketplace/internal/models"

// MessageListDTO is one mailbox view plus the unread count of the inbox,
// whatever box was asked for.
type MessageListDTO struct {
	Box      string           `json:"box"`
	Messages []models.Message `json:"messages"`
	Unread   int              `json:"unread"`
}
