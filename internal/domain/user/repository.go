package user

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Repository interface {
	// Create fails with ErrEmailTaken when the email is already stored.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Delete removes the user; a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
