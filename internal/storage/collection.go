// Package storage keeps whole collections of records as one JSON array, in a
// local file or an S3 object.
//
// A missing collection is created empty and malformed content is logged and
// treated as empty. Failing to reach the backing object is an ErrRead, so a
// read-modify-write never replaces data it could not see. Writes propagate
// their errors wrapped in ErrWrite.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

var (
	ErrRead  = errors.New("storage: read failed")
	ErrWrite = errors.New("storage: write failed")
)

type Collection[T any] interface {
	LoadAll(ctx context.Context) ([]T, error)
	SaveAll(ctx context.Context, items []T) error
}

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.MarshalIndent(items, "", "  ")
}

// decode applies the lenient read policy: bad content yields an empty slice.
func decode[T any](ctx context.Context, name string, data []byte) []T {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.ErrorContext(ctx, "discarding unreadable collection",
			"collection", name,
			"error", err,
		)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}
