package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestJSONFile_MissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	f := NewJSONFile[record](dir, "bookings")

	items, err := f.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)

	data, err := os.ReadFile(filepath.Join(dir, "bookings.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestJSONFile_RoundTripKeepsOrder(t *testing.T) {
	f := NewJSONFile[record](t.TempDir(), "messages")
	ctx := context.Background()

	in := []record{{ID: "b", Name: "second"}, {ID: "a", Name: "first"}}
	require.NoError(t, f.SaveAll(ctx, in))

	out, err := f.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJSONFile_MalformedContentIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))

	items, err := NewJSONFile[record](dir, "users").LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestJSONFile_NullArrayReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("null"), 0o644))

	items, err := NewJSONFile[record](dir, "users").LoadAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestJSONFile_WriteFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// the parent "directory" is a regular file, so nothing can be created under it
	f := NewJSONFile[record](blocker, "bookings")

	err := f.SaveAll(context.Background(), []record{{ID: "1"}})

	assert.ErrorIs(t, err, ErrWrite)
}

func TestJSONFile_UnreadablePathIsAReadError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "users.json"), 0o755))

	items, err := NewJSONFile[record](dir, "users").LoadAll(context.Background())

	assert.ErrorIs(t, err, ErrRead)
	assert.Nil(t, items)
}
