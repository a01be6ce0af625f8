package repo

import (
	"StarWarsBlog/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// propertyColumns — фиксированный набор колонок, которые разрешено
// трогать частичным обновлением. Всё вне списка отклоняется до записи.
var propertyColumns = map[string]struct{}{
	"created":     {},
	"edited":      {},
	"url":         {},
	"propertie_1": {},
	"propertie_2": {},
	"propertie_3": {},
	"propertie_4": {},
	"propertie_5": {},
	"propertie_6": {},
	"propertie_7": {},
	"propertie_8": {},
	"propertie_9": {},
}

// PropertyRepository — контракт доступа к строкам Properties.
type PropertyRepository interface {
	// Create вставляет новую строку; дубликат propertie_id даёт ошибку БД.
	Create(ctx context.Context, p *model.Properties) error

	// GetByPropertieID возвращает строку или gorm.ErrRecordNotFound.
	GetByPropertieID(ctx context.Context, propertieID string) (*model.Properties, error)

	// Update применяет частичное обновление. Все имена полей проверяются
	// до мутации: одно неизвестное имя — и строка остаётся нетронутой
	// (ErrUnknownField с именем виновного поля).
	Update(ctx context.Context, propertieID string, fields map[string]string) error

	// Delete удаляет строку; отсутствие строки не считается ошибкой.
	Delete(ctx context.Context, propertieID string) error
}

type propertyRepo struct {
	db *gorm.DB
}

// NewPropertyRepository создаёт реализацию репозитория для Properties.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *model.Properties) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *propertyRepo) GetByPropertieID(ctx context.Context, propertieID string) (*model.Properties, error) {
	var p model.Properties
	err := r.db.WithContext(ctx).
		Where("propertie_id = ?", propertieID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// toPropertyUpdates проверяет все имена полей до какой-либо записи и
// переводит их в карту обновлений для GORM.
func toPropertyUpdates(fields map[string]string) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for name, value := range fields {
		if _, ok := propertyColumns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		updates[name] = value
	}
	return updates, nil
}

func (r *propertyRepo) Update(ctx context.Context, propertieID string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	updates, err := toPropertyUpdates(fields)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&model.Properties{}).
		Where("propertie_id = ?", propertieID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *propertyRepo) Delete(ctx context.Context, propertieID string) error {
	return r.db.WithContext(ctx).
		Where("propertie_id = ?", propertieID).
		Delete(&model.Properties{}).Error
}
