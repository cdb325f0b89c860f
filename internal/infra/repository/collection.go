package repository

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

// guarded runs whole-collection read-modify-write cycles under a lock so two
// concurrent writers cannot drop each other's update.
type guarded[T any] struct {
	name   string
	coll   storage.Collection[T]
	locker lock.Locker
}

func newGuarded[T any](name string, coll storage.Collection[T], locker lock.Locker) guarded[T] {
	return guarded[T]{name: name, coll: coll, locker: locker}
}

func (g guarded[T]) load(ctx context.Context) ([]T, error) {
	return g.coll.LoadAll(ctx)
}

// mutate hands the current items to fn and saves what it returns. An error
// from fn leaves storage untouched.
func (g guarded[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	unlock, err := g.locker.Lock(ctx, g.name)
	if err != nil {
		return fmt.Errorf("lock %s: %w", g.name, err)
	}
	defer unlock()

	items, err := g.coll.LoadAll(ctx)
	if err != nil {
		return err
	}

	items, err = fn(items)
	if err != nil {
		return err
	}

	return g.coll.SaveAll(ctx, items)
}
