package booking

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// CreateBookingInput carries name snapshots. They are stored as given and
// never refreshed from the user or trainer profile.
type CreateBookingInput struct {
	ClientID   string
	ClientName string

	TrainerID   string
	TrainerName string

	Date        string
	Time        string
	SessionType string
	Notes       string
	Price       float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

// Execute does not look for other bookings of the same trainer at the same
// slot; trainers resolve overlaps by rejecting.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !domain.ValidSessionType(in.SessionType) {
		return nil, domain.ErrInvalidSession
	}
	if utf8.RuneCountInString(in.Notes) > domain.MaxNotesLength {
		return nil, domain.ErrNotesTooLong
	}
	if in.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	// past slots are accepted; the parse only checks the format
	if _, err := domain.StartTime(in.Date, in.Time, uc.loc); err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:          uuid.NewString(),
		ClientID:    in.ClientID,
		ClientName:  in.ClientName,
		TrainerID:   in.TrainerID,
		TrainerName: in.TrainerName,
		Date:        in.Date,
		Time:        in.Time,
		SessionType: in.SessionType,
		Notes:       in.Notes,
		Price:       in.Price,
		Status:      string(domain.InitialStatus()),
		CreatedAt:   uc.now().UTC(),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ClientID,
		Action:   "created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{
			"trainer_id": b.TrainerID,
			"date":       b.Date,
			"time":       b.Time,
		},
	})

	return b, nil
}
