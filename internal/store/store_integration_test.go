//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"shorturl-analytics/internal/config"
	"shorturl-analytics/internal/model"
	"shorturl-analytics/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// 在真实 Postgres 上验证唯一索引与事务行为，需要 Docker：go test -tags integration ./internal/store/
func TestStore_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("shorturl"),
		postgres.WithUsername("shorturl"),
		postgres.WithPassword("shorturl"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := database.Open(&config.DB{
		Driver:   "postgres",
		Host:     host,
		Port:     port.Int(),
		User:     "shorturl",
		Password: "shorturl",
		Name:     "shorturl",
		SSLMode:  "disable",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))

	s := New(db, zap.NewNop())

	alias := "promo"
	link := &model.Link{OriginalURL: "https://example.com", ShortCode: alias, CustomAlias: &alias, Title: "Promo"}
	require.NoError(t, s.CreateLink(ctx, link))

	// 唯一索引冲突被翻译为 ErrDuplicate
	dup := "promo"
	err = s.CreateLink(ctx, &model.Link{OriginalURL: "https://other.com", ShortCode: dup, CustomAlias: &dup, Title: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	// 未设置别名的记录互不冲突
	require.NoError(t, s.CreateLink(ctx, &model.Link{OriginalURL: "https://a.com", ShortCode: "rand001", Title: "a"}))
	require.NoError(t, s.CreateLink(ctx, &model.Link{OriginalURL: "https://b.com", ShortCode: "rand002", Title: "b"}))

	ip := "1.1.1.1"
	require.NoError(t, s.AppendClick(ctx, alias, &model.Click{Timestamp: time.Now().UTC(), SourceIP: &ip}))
	assert.ErrorIs(t, s.AppendClick(ctx, "missing", &model.Click{Timestamp: time.Now().UTC()}), ErrNotFound)

	found, err := s.FindLinkByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Len(t, found.Clicks, 1)

	require.NoError(t, s.DeleteLink(ctx, link.ID))
	var remaining int64
	require.NoError(t, db.Model(&model.Click{}).Where("link_id = ?", link.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
