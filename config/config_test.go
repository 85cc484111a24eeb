package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piwkina-shop/store"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "http://a.ge, http://b.ge,")
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "admin@piwkina.ge", cfg.AdminEmail)
	assert.Equal(t, []string{"http://a.ge", "http://b.ge"}, cfg.CORSOrigins)
}

func TestInitDBSQLite(t *testing.T) {
	cfg := Config{StoreDriver: DriverSQLite, DatabaseURL: filepath.Join(t.TempDir(), "shop.db")}
	db, err := InitDB(cfg)
	require.NoError(t, err)

	backend := NewBackend(cfg, db)
	_, isGorm := backend.(*store.GormBackend)
	assert.True(t, isGorm)

	ctx := context.Background()
	require.NoError(t, backend.Collection(store.Pages).Create(ctx, store.Row{
		"id": "page_1", "title_en": "About", "title_ka": "შესახებ", "slug": "about", "is_published": "1",
	}))
	rows, err := backend.Collection(store.Pages).List(ctx, store.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(Config{StoreDriver: "oracle"})
	assert.Error(t, err)
}
