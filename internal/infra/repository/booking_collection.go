package repository

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type BookingCollectionRepository struct {
	store guarded[models.Booking]
}

func NewBookingCollectionRepository(
	coll storage.Collection[models.Booking],
	locker lock.Locker,
) *BookingCollectionRepository {
	return &BookingCollectionRepository{store: newGuarded("bookings", coll, locker)}
}

func (r *BookingCollectionRepository) Create(ctx context.Context, b *models.Booking) error {
	return r.store.mutate(ctx, func(items []models.Booking) ([]models.Booking, error) {
		return append(items, *b), nil
	})
}

func (r *BookingCollectionRepository) Update(
	ctx context.Context,
	id string,
	fn func(b *models.Booking) error,
) (*models.Booking, error) {

	var updated models.Booking
	err := r.store.mutate(ctx, func(items []models.Booking) ([]models.Booking, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			b := items[i]
			if err := fn(&b); err != nil {
				return nil, err
			}
			items[i] = b
			updated = b
			return items, nil
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BookingCollectionRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	items, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range items {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingCollectionRepository) List(ctx context.Context) ([]models.Booking, error) {
	return r.store.load(ctx)
}

func (r *BookingCollectionRepository) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return r.filter(ctx, func(b models.Booking) bool { return b.ClientID == clientID })
}

func (r *BookingCollectionRepository) ListByTrainer(ctx context.Context, trainerID string) ([]models.Booking, error) {
	return r.filter(ctx, func(b models.Booking) bool { return b.TrainerID == trainerID })
}

func (r *BookingCollectionRepository) FirstAccepted(ctx context.Context, clientID string) (*models.Booking, error) {
	items, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range items {
		if b.ClientID == clientID && domain.IsActive(b) {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *BookingCollectionRepository) filter(
	ctx context.Context,
	keep func(models.Booking) bool,
) ([]models.Booking, error) {

	items, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(items))
	for _, b := range items {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingCollectionRepository)(nil)
