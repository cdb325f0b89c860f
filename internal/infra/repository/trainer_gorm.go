package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type TrainerGormRepository struct {
	db *gorm.DB
}

func NewTrainerGormRepository(db *gorm.DB) *TrainerGormRepository {
	return &TrainerGormRepository{db: db}
}

func (r *TrainerGormRepository) GetByID(ctx context.Context, userID string) (*models.Trainer, error) {
	var t models.Trainer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TrainerGormRepository) List(ctx context.Context) ([]models.Trainer, error) {
	var out []models.Trainer
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save upserts on user_id. seq is left alone so catalog order stays stable.
func (r *TrainerGormRepository) Save(ctx context.Context, t *models.Trainer) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name",
				"specialties",
				"location",
				"price_per_session",
				"experience_years",
				"bio",
				"avatar_url",
				"rating",
				"review_count",
				"updated_at",
			}),
		}).
		Create(t).Error
}

func (r *TrainerGormRepository) Update(
	ctx context.Context,
	userID string,
	fn func(t *models.Trainer) error,
) (*models.Trainer, error) {

	var t models.Trainer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&t).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := fn(&t); err != nil {
			return err
		}

		return tx.Save(&t).Error
	})
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// Compile-time check
var _ domain.Repository = (*TrainerGormRepository)(nil)
