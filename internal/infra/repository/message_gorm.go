package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/message"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type MessageGormRepository struct {
	db *gorm.DB
}

func NewMessageGormRepository(db *gorm.DB) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

func (r *MessageGormRepository) Create(ctx context.Context, m *models.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageGormRepository) Update(
	ctx context.Context,
	id string,
	fn func(m *models.Message) error,
) (*models.Message, error) {

	var m models.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&m).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := fn(&m); err != nil {
			return err
		}

		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *MessageGormRepository) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	var out []models.Message
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("seq ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*MessageGormRepository)(nil)
