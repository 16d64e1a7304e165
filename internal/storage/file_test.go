package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	_, err := store.Load(ctx, "cart")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, store.Save(ctx, "cart", []byte(`[{"quantity":2}]`)))

	blob, err := store.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"quantity":2}]`), blob)

	// keys are independent
	_, err = store.Load(ctx, "orders")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "theme", []byte(`{"mode":"light"}`)))
	require.NoError(t, store.Save(ctx, "theme", []byte(`{"mode":"dark"}`)))

	blob, err := store.Load(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"mode":"dark"}`), blob)
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)

	require.NoError(t, store.Save(context.Background(), "cart", []byte("[]")))

	blob, err := store.Load(context.Background(), "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), blob)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Load(ctx, "cart")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, store.Save(ctx, "cart", []byte("[]")))
	blob, err := store.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), blob)
}
