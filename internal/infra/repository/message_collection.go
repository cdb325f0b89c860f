package repository

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/message"
	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type MessageCollectionRepository struct {
	store guarded[models.Message]
}

func NewMessageCollectionRepository(
	coll storage.Collection[models.Message],
	locker lock.Locker,
) *MessageCollectionRepository {
	return &MessageCollectionRepository{store: newGuarded("messages", coll, locker)}
}

func (r *MessageCollectionRepository) Create(ctx context.Context, m *models.Message) error {
	return r.store.mutate(ctx, func(items []models.Message) ([]models.Message, error) {
		return append(items, *m), nil
	})
}

func (r *MessageCollectionRepository) Update(
	ctx context.Context,
	id string,
	fn func(m *models.Message) error,
) (*models.Message, error) {

	var updated models.Message
	err := r.store.mutate(ctx, func(items []models.Message) ([]models.Message, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			m := items[i]
			if err := fn(&m); err != nil {
				return nil, err
			}
			items[i] = m
			updated = m
			return items, nil
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MessageCollectionRepository) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	items, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.InBox(items, userID, domain.BoxAll), nil
}

// Compile-time check
var _ domain.Repository = (*MessageCollectionRepository)(nil)
