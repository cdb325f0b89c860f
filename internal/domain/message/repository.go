package message

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Message) error

	// Update loads the message, lets fn mutate it and persists the result.
	// A missing id yields ErrNotFound and nothing is written.
	Update(
		ctx context.Context,
		id string,
		fn func(m *models.Message) error,
	) (*models.Message, error)

	// ListForUser returns messages sent or received by userID in insertion
	// order.
	ListForUser(ctx context.Context, userID string) ([]models.Message, error)
}
