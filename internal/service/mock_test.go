package service

import (
	"context"

	"shorturl-analytics/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockLinkStore struct {
	mock.Mock
}

func (m *mockLinkStore) CreateLink(ctx context.Context, link *model.Link) error {
	args := m.Called(ctx, link)
	if args.Error(0) == nil {
		link.ID = 1
	}
	return args.Error(0)
}

func (m *mockLinkStore) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockLinkStore) FindLinkByCode(ctx context.Context, code string, withClicks bool) (*model.Link, error) {
	args := m.Called(ctx, code, withClicks)
	if link := args.Get(0); link != nil {
		return link.(*model.Link), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLinkStore) FindLinkByID(ctx context.Context, id uint) (*model.Link, error) {
	args := m.Called(ctx, id)
	if link := args.Get(0); link != nil {
		return link.(*model.Link), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLinkStore) ListLinksByOwner(ctx context.Context, ownerID uint) ([]model.Link, error) {
	args := m.Called(ctx, ownerID)
	if links := args.Get(0); links != nil {
		return links.([]model.Link), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLinkStore) DeleteLink(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockLinkStore) AppendClick(ctx context.Context, code string, click *model.Click) error {
	return m.Called(ctx, code, click).Error(0)
}

type stubDevices struct{}

func (stubDevices) DeviceType(string) string { return "desktop" }

type stubTokens struct{}

func (stubTokens) GenerateToken(userID uint, email string) (string, error) {
	return "token-" + email, nil
}
