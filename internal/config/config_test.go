package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.Catalog.URL, "dummyjson.com")
	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, 9, cfg.Shop.PageSize)
	assert.Equal(t, 5, cfg.Shop.RecentLimit)
	assert.Equal(t, 10, cfg.Shop.SuggestedCount)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CATALOG_URL", "http://localhost:9000/products")
	t.Setenv("DATA_DIR", "/tmp/collections")
	t.Setenv("PAGE_SIZE", "12")
	t.Setenv("RECENT_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/products", cfg.Catalog.URL)
	assert.Equal(t, "/tmp/collections", cfg.Storage.Dir)
	assert.Equal(t, 12, cfg.Shop.PageSize)
	assert.Equal(t, 3, cfg.Shop.RecentLimit)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("PAGE_SIZE", "lots")
	t.Setenv("RECENT_LIMIT", "-2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Shop.PageSize)
	assert.Equal(t, 5, cfg.Shop.RecentLimit)
}
