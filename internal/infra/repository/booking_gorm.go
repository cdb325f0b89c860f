package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / state change
// --------------------------------------------------

func (r *BookingGormRepository) Create(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	id string,
	fn func(b *models.Booking) error,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&b).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := fn(&b); err != nil {
			return err
		}

		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) List(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("seq ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListByTrainer(ctx context.Context, trainerID string) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("seq ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) FirstAccepted(ctx context.Context, clientID string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND status = ?", clientID, string(domain.StatusAccepted)).
		Order("seq ASC").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
