package booking

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type ListBookingsForUser struct {
	repo domain.Repository
}

func NewListBookingsForUser(repo domain.Repository) *ListBookingsForUser {
	return &ListBookingsForUser{repo: repo}
}

// Execute scopes by trainerId for role "trainer" and by clientId for anything
// else. Order is insertion order.
func (uc *ListBookingsForUser) Execute(
	ctx context.Context,
	userID string,
	role string,
) ([]models.Booking, error) {

	if role == string(models.RoleTrainer) {
		return uc.repo.ListByTrainer(ctx, userID)
	}
	return uc.repo.ListByClient(ctx, userID)
}

type GetActiveBooking struct {
	repo domain.Repository
}

func NewGetActiveBooking(repo domain.Repository) *GetActiveBooking {
	return &GetActiveBooking{repo: repo}
}

// Execute returns the first accepted booking of the client in storage order.
func (uc *GetActiveBooking) Execute(
	ctx context.Context,
	clientID string,
) (bool, *models.Booking, error) {

	b, err := uc.repo.FirstAccepted(ctx, clientID)
	if err != nil {
		return false, nil, err
	}
	return b != nil, b, nil
}
