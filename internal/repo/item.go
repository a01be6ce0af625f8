package repo

import (
	"StarWarsBlog/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// IngestEntry — одна запись batch-загрузки: Item вместе с его Properties
// в уже плоском (generic-слоты) виде.
type IngestEntry struct {
	Item       model.Item
	Properties model.Properties
}

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Путь записи ключуется по PropID, путь чтения — по паре (type_item, uid).
type ItemRepository interface {
	// Create вставляет новый Item; дубликат prop_id или uid даёт ошибку БД.
	Create(ctx context.Context, item *model.Item) error

	// GetByTypeAndUID возвращает единственный Item по ключу чтения
	// или gorm.ErrRecordNotFound.
	GetByTypeAndUID(ctx context.Context, typeItem model.ItemType, uid string) (*model.Item, error)

	// UpdateDescription заменяет description и увеличивает version ровно на 1.
	// Возвращает новую версию или gorm.ErrRecordNotFound.
	UpdateDescription(ctx context.Context, typeItem model.ItemType, uid, description string) (int64, error)

	// UpdateWithProperties одной транзакцией заменяет description (version+1)
	// и применяет частичное обновление Properties. Имена полей проверяются
	// до любой записи; ошибка любого шага откатывает оба.
	UpdateWithProperties(ctx context.Context, typeItem model.ItemType, uid, description string, propFields map[string]string) (int64, error)

	// DeleteWithProperties удаляет Properties и Item одной транзакцией:
	// логическая сущность — это пара строк, порознь они не живут.
	DeleteWithProperties(ctx context.Context, typeItem model.ItemType, uid string) error

	// IngestBatch применяет весь батч одной транзакцией. Записи с уже
	// существующим prop_id пропускаются (идемпотентный повтор); любая
	// другая ошибка откатывает батч целиком и называет виновный prop_id.
	IngestBatch(ctx context.Context, entries []IngestEntry) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) GetByTypeAndUID(ctx context.Context, typeItem model.ItemType, uid string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).
		Where("type_item = ? AND uid = ?", typeItem, uid).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) UpdateDescription(ctx context.Context, typeItem model.ItemType, uid, description string) (int64, error) {
	var newVersion int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Item{}).
			Where("type_item = ? AND uid = ?", typeItem, uid).
			Updates(map[string]any{
				"description": description,
				"version":     gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		var it model.Item
		if err := tx.Where("type_item = ? AND uid = ?", typeItem, uid).First(&it).Error; err != nil {
			return err
		}
		newVersion = it.Version
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

func (r *itemRepo) UpdateWithProperties(ctx context.Context, typeItem model.ItemType, uid, description string, propFields map[string]string) (int64, error) {
	updates, err := toPropertyUpdates(propFields)
	if err != nil {
		return 0, err
	}

	var newVersion int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.Item
		if err := tx.Where("type_item = ? AND uid = ?", typeItem, uid).First(&it).Error; err != nil {
			return err
		}

		if len(updates) > 0 {
			res := tx.Model(&model.Properties{}).
				Where("propertie_id = ?", it.PropID).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrPropertiesNotFound
			}
		}

		res := tx.Model(&model.Item{}).
			Where("id = ?", it.ID).
			Updates(map[string]any{
				"description": description,
				"version":     gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		newVersion = it.Version + 1
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

func (r *itemRepo) DeleteWithProperties(ctx context.Context, typeItem model.ItemType, uid string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.Item
		if err := tx.Where("type_item = ? AND uid = ?", typeItem, uid).First(&it).Error; err != nil {
			return err
		}
		// сначала Properties, затем Item — каскада на уровне БД нет
		if err := tx.Where("propertie_id = ?", it.PropID).Delete(&model.Properties{}).Error; err != nil {
			return err
		}
		return tx.Delete(&it).Error
	})
}

func (r *itemRepo) IngestBatch(ctx context.Context, entries []IngestEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			e := entries[i]

			var count int64
			if err := tx.Model(&model.Item{}).
				Where("prop_id = ?", e.Item.PropID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("ingest %s: %w", e.Item.PropID, err)
			}
			if count > 0 {
				// prop_id уже загружен — повтор батча безопасен
				continue
			}

			if err := tx.Create(&e.Item).Error; err != nil {
				return fmt.Errorf("ingest item %s: %w", e.Item.PropID, err)
			}

			e.Properties.PropertieID = e.Item.PropID
			if err := tx.Create(&e.Properties).Error; err != nil {
				return fmt.Errorf("ingest properties %s: %w", e.Item.PropID, err)
			}
		}
		return nil
	})
}
