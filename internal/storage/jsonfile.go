package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

type JSONFile[T any] struct {
	path string
}

func NewJSONFile[T any](dir, name string) *JSONFile[T] {
	return &JSONFile[T]{path: filepath.Join(dir, name+".json")}
}

func (f *JSONFile[T]) LoadAll(ctx context.Context) ([]T, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := f.SaveAll(ctx, nil); err != nil {
			slog.WarnContext(ctx, "could not initialise collection file",
				"path", f.path,
				"error", err,
			)
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return decode[T](ctx, f.path, data), nil
}

// SaveAll replaces the file through a temp file and rename so readers never
// see a half written array.
func (f *JSONFile[T]) SaveAll(ctx context.Context, items []T) error {
	data, err := encode(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrWrite, f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

var _ Collection[struct{}] = (*JSONFile[struct{}])(nil)
