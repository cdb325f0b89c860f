package repository

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type UserCollectionRepository struct {
	store guarded[models.User]
}

func NewUserCollectionRepository(
	coll storage.Collection[models.User],
	locker lock.Locker,
) *UserCollectionRepository {
	return &UserCollectionRepository{store: newGuarded("users", coll, locker)}
}

func (r *UserCollectionRepository) Create(ctx context.Context, u *models.User) error {
	return r.store.mutate(ctx, func(items []models.User) ([]models.User, error) {
		for _, existing := range items {
			if existing.Email == u.Email {
				return nil, domain.ErrEmailTaken
			}
		}
		return append(items, *u), nil
	})
}

func (r *UserCollectionRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.ID == id })
}

func (r *UserCollectionRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.Email == email })
}

func (r *UserCollectionRepository) Delete(ctx context.Context, id string) error {
	return r.store.mutate(ctx, func(items []models.User) ([]models.User, error) {
		kept := items[:0]
		for _, u := range items {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		return kept, nil
	})
}

func (r *UserCollectionRepository) find(ctx context.Context, match func(models.User) bool) (*models.User, error) {
	items, err := r.store.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range items {
		if match(u) {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Compile-time check
var _ domain.Repository = (*UserCollectionRepository)(nil)
