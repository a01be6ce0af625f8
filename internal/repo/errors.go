package repo

import "errors"

// Типизированные ошибки слоя репозиториев. Отсутствие записи сигналится
// стандартным gorm.ErrRecordNotFound, здесь только доменные случаи.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrPropertiesNotFound = errors.New("properties not found")
	ErrDuplicateFavorite  = errors.New("favorite already exists")
	ErrFavoriteLimit      = errors.New("favorites limit reached")
	ErrUnknownField       = errors.New("unknown field")
)
