package service

import (
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemService инкапсулирует бизнес-логику каталога: batch-загрузку,
// чтение с раскрытием слотов и обновление/удаление пары Item+Properties.
type ItemService struct {
	items  repo.ItemRepository
	props  repo.PropertyRepository
	logger *zap.SugaredLogger
}

func NewItemService(items repo.ItemRepository, props repo.PropertyRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{items: items, props: props, logger: logger}
}

// ItemView — результат чтения: метаданные Item плюс раскрытые
// именованные поля его Properties.
type ItemView struct {
	UID         string
	Description string
	Version     int64
	Properties  map[string]string
}

// UpdateRequest — вход обновления: новый description и частичное
// обновление свойств в именованных полях типа.
type UpdateRequest struct {
	Description string
	Properties  map[string]string
}

// Ingest применяет батч целиком: либо все новые записи сохранены, либо ни
// одной. Записи с уже известным prop_id пропускаются, поэтому повтор
// батча безопасен. Тип каждой записи проверяется до обращения к БД.
func (s *ItemService) Ingest(ctx context.Context, entries []repo.IngestEntry) error {
	for i := range entries {
		e := &entries[i]
		if !model.KnownType(e.Item.TypeItem) {
			return fmt.Errorf("%w: %s (item %s)", ErrUnknownItemType, e.Item.TypeItem, e.Item.PropID)
		}
		if e.Item.PropID == "" {
			return fmt.Errorf("item %d: missing prop_id", i)
		}
	}

	if err := s.items.IngestBatch(ctx, entries); err != nil {
		s.logger.Warnw("Ingest: batch failed", "entries", len(entries), "error", err)
		return err
	}
	return nil
}

// Get возвращает элемент по ключу чтения (type_item, uid) с раскрытыми
// свойствами. Отсутствие Item и отсутствие Properties различаются.
func (s *ItemService) Get(ctx context.Context, typeItem model.ItemType, uid string) (*ItemView, error) {
	if _, err := FieldsForType(typeItem); err != nil {
		return nil, err
	}

	it, err := s.items.GetByTypeAndUID(ctx, typeItem, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrItemNotFound
		}
		return nil, err
	}

	p, err := s.props.GetByPropertieID(ctx, it.PropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrPropertiesNotFound
		}
		return nil, err
	}

	named, err := ExpandProperties(typeItem, p)
	if err != nil {
		return nil, err
	}

	return &ItemView{
		UID:         it.UID,
		Description: it.Description,
		Version:     it.Version,
		Properties:  named,
	}, nil
}

// Update заменяет description (version+1) и применяет частичное обновление
// свойств одной транзакцией. Именованные поля переводятся в generic-колонки
// до записи; неизвестное имя отклоняет запрос целиком.
func (s *ItemService) Update(ctx context.Context, typeItem model.ItemType, uid string, req UpdateRequest) (int64, error) {
	columns, err := FlattenPartial(typeItem, req.Properties)
	if err != nil {
		return 0, err
	}

	newVersion, err := s.items.UpdateWithProperties(ctx, typeItem, uid, req.Description, columns)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repo.ErrItemNotFound
		}
		return 0, err
	}
	return newVersion, nil
}

// Delete убирает обе строки логической сущности одной транзакцией.
func (s *ItemService) Delete(ctx context.Context, typeItem model.ItemType, uid string) error {
	if _, err := FieldsForType(typeItem); err != nil {
		return err
	}

	err := s.items.DeleteWithProperties(ctx, typeItem, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.ErrItemNotFound
		}
		return err
	}
	return nil
}
