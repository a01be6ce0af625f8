package service

import (
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/repo"
	"context"
)

// FavoriteService — тонкая обёртка над репозиторием закладок: проверки
// дубликата и лимита живут внутри транзакции репозитория.
type FavoriteService struct {
	repo repo.FavoriteRepository
}

func NewFavoriteService(r repo.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: r}
}

func (s *FavoriteService) Add(ctx context.Context, userID, itemID int64) (*model.Favorite, error) {
	return s.repo.Add(ctx, userID, itemID)
}

func (s *FavoriteService) List(ctx context.Context, userID int64) ([]model.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *FavoriteService) Delete(ctx context.Context, favoriteID int64) error {
	return s.repo.Delete(ctx, favoriteID)
}
