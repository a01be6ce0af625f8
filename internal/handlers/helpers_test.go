package handlers_test

import (
	"StarWarsBlog/internal/config"
	"StarWarsBlog/internal/handlers"
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/repo"
	"StarWarsBlog/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *mockItemRepo) GetByTypeAndUID(ctx context.Context, typeItem model.ItemType, uid string) (*model.Item, error) {
	args := m.Called(ctx, typeItem, uid)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) UpdateDescription(ctx context.Context, typeItem model.ItemType, uid, description string) (int64, error) {
	args := m.Called(ctx, typeItem, uid, description)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepo) UpdateWithProperties(ctx context.Context, typeItem model.ItemType, uid, description string, propFields map[string]string) (int64, error) {
	args := m.Called(ctx, typeItem, uid, description, propFields)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepo) DeleteWithProperties(ctx context.Context, typeItem model.ItemType, uid string) error {
	args := m.Called(ctx, typeItem, uid)
	return args.Error(0)
}
func (m *mockItemRepo) IngestBatch(ctx context.Context, entries []repo.IngestEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockPropertyRepo struct{ mock.Mock }

func (m *mockPropertyRepo) Create(ctx context.Context, p *model.Properties) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *mockPropertyRepo) GetByPropertieID(ctx context.Context, propertieID string) (*model.Properties, error) {
	args := m.Called(ctx, propertieID)
	if v, ok := args.Get(0).(*model.Properties); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPropertyRepo) Update(ctx context.Context, propertieID string, fields map[string]string) error {
	args := m.Called(ctx, propertieID, fields)
	return args.Error(0)
}
func (m *mockPropertyRepo) Delete(ctx context.Context, propertieID string) error {
	args := m.Called(ctx, propertieID)
	return args.Error(0)
}

var _ repo.PropertyRepository = (*mockPropertyRepo)(nil)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockFavoriteRepo struct{ mock.Mock }

func (m *mockFavoriteRepo) Add(ctx context.Context, userID, itemID int64) (*model.Favorite, error) {
	args := m.Called(ctx, userID, itemID)
	if v, ok := args.Get(0).(*model.Favorite); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFavoriteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Favorite); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFavoriteRepo) Delete(ctx context.Context, favoriteID int64) error {
	args := m.Called(ctx, favoriteID)
	return args.Error(0)
}

var _ repo.FavoriteRepository = (*mockFavoriteRepo)(nil)

// --- Helpers ---
type testRepos struct {
	items *mockItemRepo
	props *mockPropertyRepo
	users *mockUserRepo
	favs  *mockFavoriteRepo
}

func newTestRouter(t *testing.T) (http.Handler, *testRepos) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	reps := &testRepos{
		items: new(mockItemRepo),
		props: new(mockPropertyRepo),
		users: new(mockUserRepo),
		favs:  new(mockFavoriteRepo),
	}

	itemSvc := service.NewItemService(reps.items, reps.props, logger)
	userSvc := service.NewUserService(reps.users)
	favSvc := service.NewFavoriteService(reps.favs)

	h := handlers.NewHandler(itemSvc, userSvc, favSvc, logger, cfg)
	return h.Router, reps
}
