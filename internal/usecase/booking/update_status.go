package booking

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute lets the booking's trainer accept or reject it while it is pending.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actorID string,
	bookingID string,
	status string,
) (*models.Booking, error) {

	next, err := domain.ParseDecision(status)
	if err != nil {
		return nil, err
	}

	var previous string
	b, err := uc.repo.Update(ctx, bookingID, func(b *models.Booking) error {
		if b.TrainerID != actorID {
			return domain.ErrForbidden
		}
		previous = b.Status
		return domain.ApplyDecision(b, next)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "status_changed",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   b.Status,
		},
	})

	return b, nil
}
