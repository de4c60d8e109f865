package store

import (
	"context"
	"testing"
	"time"

	"shorturl-analytics/internal/model"
	"shorturl-analytics/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testutil.OpenDB(t), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestStore_CreateAndFind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	link := &model.Link{OriginalURL: "https://example.com", ShortCode: "abc1234", Title: "Example"}
	require.NoError(t, s.CreateLink(ctx, link))
	assert.NotZero(t, link.ID)

	found, err := s.FindLinkByCode(ctx, "abc1234", false)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", found.OriginalURL)

	exists, err := s.CodeExists(ctx, "abc1234")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = s.FindLinkByCode(ctx, "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindLinkByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UniqueShortCode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateLink(ctx, &model.Link{OriginalURL: "https://a.com", ShortCode: "dup", Title: "a"}))
	err := s.CreateLink(ctx, &model.Link{OriginalURL: "https://b.com", ShortCode: "dup", Title: "b"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStore_SparseAliasUniqueness(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// 未设置别名的记录之间互不冲突
	require.NoError(t, s.CreateLink(ctx, &model.Link{OriginalURL: "https://a.com", ShortCode: "r1", Title: "a"}))
	require.NoError(t, s.CreateLink(ctx, &model.Link{OriginalURL: "https://b.com", ShortCode: "r2", Title: "b"}))

	require.NoError(t, s.CreateLink(ctx, &model.Link{OriginalURL: "https://c.com", ShortCode: "promo", CustomAlias: strPtr("promo"), Title: "c"}))
	err := s.CreateLink(ctx, &model.Link{OriginalURL: "https://d.com", ShortCode: "promo", CustomAlias: strPtr("promo"), Title: "d"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStore_AppendClick(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	link := &model.Link{OriginalURL: "https://example.com", ShortCode: "clk", Title: "t"}
	require.NoError(t, s.CreateLink(ctx, link))

	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)
	require.NoError(t, s.AppendClick(ctx, "clk", &model.Click{Timestamp: later, SourceIP: strPtr("1.1.1.1")}))
	require.NoError(t, s.AppendClick(ctx, "clk", &model.Click{Timestamp: earlier}))

	err := s.AppendClick(ctx, "nope", &model.Click{Timestamp: later})
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := s.FindLinkByID(ctx, link.ID)
	require.NoError(t, err)
	require.Len(t, found.Clicks, 2)
	assert.True(t, found.Clicks[0].Timestamp.Equal(earlier), "点击记录按时间升序加载")
	assert.Nil(t, found.Clicks[0].SourceIP)
	assert.Equal(t, "1.1.1.1", *found.Clicks[1].SourceIP)
}

func TestStore_ListLinksByOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner, other := uint(1), uint(2)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, code := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreateLink(ctx, &model.Link{
			OriginalURL: "https://example.com/" + code,
			ShortCode:   code,
			Title:       code,
			OwnerID:     &owner,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, s.CreateLink(ctx, &model.Link{OriginalURL: "https://x.com", ShortCode: "foreign", Title: "x", OwnerID: &other}))

	links, err := s.ListLinksByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "third", links[0].ShortCode)
	assert.Equal(t, "first", links[2].ShortCode)
}

func TestStore_DeleteLink(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	link := &model.Link{OriginalURL: "https://example.com", ShortCode: "gone", Title: "t"}
	require.NoError(t, s.CreateLink(ctx, link))
	require.NoError(t, s.AppendClick(ctx, "gone", &model.Click{Timestamp: time.Now()}))

	require.NoError(t, s.DeleteLink(ctx, link.ID))
	_, err := s.FindLinkByCode(ctx, "gone", false)
	assert.ErrorIs(t, err, ErrNotFound)

	var clicks int64
	require.NoError(t, s.db.Model(&model.Click{}).Where("link_id = ?", link.ID).Count(&clicks).Error)
	assert.Zero(t, clicks)

	assert.ErrorIs(t, s.DeleteLink(ctx, link.ID), ErrNotFound)
}

func TestStore_Users(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &model.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.ErrorIs(t, s.CreateUser(ctx, &model.User{Name: "Ann2", Email: "ann@example.com", PasswordHash: "y"}), ErrDuplicate)

	byEmail, err := s.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = s.FindUserByID(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Ping(ctx))
}
