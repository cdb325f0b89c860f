package repository

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type TrainerCollectionRepository struct {
	store guarded[models.Trainer]
}

func NewTrainerCollectionRepository(
	coll storage.Collection[models.Trainer],
	locker lock.Locker,
) *TrainerCollectionRepository {
	return &TrainerCollectionRepository{store: newGuarded("trainers", coll, locker)}
}

func (r *TrainerCollectionRepository) GetByID(ctx context.Context, userID string) (*models.Trainer, error) {
	items, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		if t.UserID == userID {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *TrainerCollectionRepository) List(ctx context.Context) ([]models.Trainer, error) {
	return r.store.load(ctx)
}

func (r *TrainerCollectionRepository) Save(ctx context.Context, t *models.Trainer) error {
	return r.store.mutate(ctx, func(items []models.Trainer) ([]models.Trainer, error) {
		for i := range items {
			if items[i].UserID == t.UserID {
				items[i] = *t
				return items, nil
			}
		}
		return append(items, *t), nil
	})
}

func (r *TrainerCollectionRepository) Update(
	ctx context.Context,
	userID string,
	fn func(t *models.Trainer) error,
) (*models.Trainer, error) {

	var updated models.Trainer
	err := r.store.mutate(ctx, func(items []models.Trainer) ([]models.Trainer, error) {
		for i := range items {
			if items[i].UserID != userID {
				continue
			}
			t := items[i]
			if err := fn(&t); err != nil {
				return nil, err
			}
			items[i] = t
			updated = t
			return items, nil
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Compile-time check
var _ domain.Repository = (*TrainerCollectionRepository)(nil)
