package booking

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error

	// Update loads the booking, lets fn mutate it and persists the result as
	// one serialized step. fn errors abort without writing.
	Update(
		ctx context.Context,
		id string,
		fn func(b *models.Booking) error,
	) (*models.Booking, error)

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// List returns every booking in insertion order.
	List(ctx context.Context) ([]models.Booking, error)

	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]models.Booking, error)

	// FirstAccepted returns the earliest stored accepted booking for the
	// client, or nil.
	FirstAccepted(ctx context.Context, clientID string) (*models.Booking, error)
}
