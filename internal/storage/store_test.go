package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "collections"))

	_, ok := store.Get("cart")
	assert.False(t, ok)

	require.NoError(t, store.Set("cart", `[{"id":"1"}]`))

	value, ok := store.Get("cart")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestFileStoreOverwrites(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Set("wishlist", `["1","2"]`))
	require.NoError(t, store.Set("wishlist", `["2"]`))

	value, ok := store.Get("wishlist")
	require.True(t, ok)
	assert.Equal(t, `["2"]`, value)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("recent")
	assert.False(t, ok)

	require.NoError(t, store.Set("recent", `["5"]`))
	value, ok := store.Get("recent")
	require.True(t, ok)
	assert.Equal(t, `["5"]`, value)
}
