package database

import (
	"context"
	"path/filepath"
	"testing"

	"shorturl-analytics/internal/config"
	"shorturl-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db"), MaxOpenConns: 1}

	db, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrate(db, zap.NewNop()))
	for _, m := range []interface{}{&model.User{}, &model.Link{}, &model.Click{}} {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.PingContext(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DB{Driver: "mongo"}, zap.NewNop())
	assert.Error(t, err)
}
