package trainer

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Repository interface {
	GetByID(ctx context.Context, userID string) (*models.Trainer, error)
	List(ctx context.Context) ([]models.Trainer, error)

	// Save inserts or replaces the profile keyed by UserID.
	Save(ctx context.Context, t *models.Trainer) error

	// Update loads the profile, lets fn mutate it and persists the result as
	// one serialized step. A missing profile yields ErrNotFound.
	Update(
		ctx context.Context,
		userID string,
		fn func(t *models.Trainer) error,
	) (*models.Trainer, error)
}
