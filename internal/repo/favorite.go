package repo

import (
	"StarWarsBlog/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// MaxFavoritesPerUser — жёсткий потолок закладок на пользователя.
const MaxFavoritesPerUser = 5

// FavoriteRepository — контракт доступа к закладкам пользователя.
type FavoriteRepository interface {
	// Add создаёт закладку. Проверка дубликата и лимита выполняется в одной
	// транзакции со вставкой, чтобы параллельные запросы не пробили потолок.
	Add(ctx context.Context, userID, itemID int64) (*model.Favorite, error)

	// ListByUser возвращает все закладки пользователя.
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)

	// Delete удаляет закладку по её id; gorm.ErrRecordNotFound если её нет.
	Delete(ctx context.Context, favoriteID int64) error
}

type favoriteRepo struct {
	db *gorm.DB
}

// NewFavoriteRepository создаёт реализацию репозитория для Favorite.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Add(ctx context.Context, userID, itemID int64) (*model.Favorite, error) {
	var fav *model.Favorite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var item model.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.Favorite{}).
			Where("user_id = ? AND item_id = ?", userID, itemID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateFavorite
		}

		if err := tx.Model(&model.Favorite{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= MaxFavoritesPerUser {
			return ErrFavoriteLimit
		}

		f := model.Favorite{UserID: userID, ItemID: itemID}
		if err := tx.Create(&f).Error; err != nil {
			return err
		}
		fav = &f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	var favs []model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *favoriteRepo) Delete(ctx context.Context, favoriteID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Favorite{}, favoriteID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
