package service

import (
	"StarWarsBlog/internal/model"
	"errors"
	"fmt"
)

// Ошибки слоя проекции. Неизвестный тип или неизвестное имя поля
// отклоняют запрос до какой-либо записи.
var (
	ErrUnknownItemType = errors.New("unknown item type")
	ErrUnknownField    = errors.New("unknown field")
)

// typeFields — фиксированный порядок именованных полей по типам элементов.
// Позиция поля в списке равна номеру generic-слота (с единицы): для people
// name хранится в propertie_1, birth_year — в propertie_9. Порядок взят из
// исходных записей swapi и менять его нельзя — он зашит в загруженные данные.
var typeFields = map[model.ItemType][]string{
	model.TypePeople: {
		"name", "gender", "skin_color", "hair_color", "height",
		"eye_color", "mass", "homeworld", "birth_year",
	},
	model.TypePlanets: {
		"climate", "surface_water", "diameter", "rotation_period", "terrain",
		"gravity", "orbital_period", "population", "name",
	},
}

// passthroughFields проходят мимо проекции в обе стороны как есть.
var passthroughFields = map[string]string{
	"created": "created",
	"edited":  "edited",
	"url":     "url",
}

// FieldsForType возвращает порядок именованных полей типа.
func FieldsForType(t model.ItemType) ([]string, error) {
	fields, ok := typeFields[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItemType, t)
	}
	return fields, nil
}

// ExpandProperties раскрывает generic-строку в именованные поля типа.
// created/edited/url попадают в результат без изменений.
func ExpandProperties(t model.ItemType, p *model.Properties) (map[string]string, error) {
	fields, err := FieldsForType(t)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(fields)+3)
	out["created"] = p.Created
	out["edited"] = p.Edited
	out["url"] = p.URL

	slots := p.Slots()
	for i, name := range fields {
		out[name] = slots[i]
	}
	return out, nil
}

// FlattenProperties переводит именованный payload в generic-строку.
// Слоты сверх числа полей источника заполняются пустой строкой; ключ вне
// набора полей типа (и вне created/edited/url) — ошибка до любой записи.
func FlattenProperties(t model.ItemType, payload map[string]string) (*model.Properties, error) {
	fields, err := FieldsForType(t)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(fields))
	for i, name := range fields {
		index[name] = i
	}

	var p model.Properties
	var slots [9]string
	for name, value := range payload {
		if _, ok := passthroughFields[name]; ok {
			switch name {
			case "created":
				p.Created = value
			case "edited":
				p.Edited = value
			case "url":
				p.URL = value
			}
			continue
		}
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		slots[i] = value
	}
	p.SetSlots(slots)
	return &p, nil
}

// FlattenPartial переводит частичный именованный payload в карту
// generic-колонок для частичного обновления хранилища. В отличие от
// FlattenProperties незатронутые слоты не обнуляются — они просто
// отсутствуют в результате.
func FlattenPartial(t model.ItemType, payload map[string]string) (map[string]string, error) {
	fields, err := FieldsForType(t)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(fields))
	for i, name := range fields {
		index[name] = i
	}

	out := make(map[string]string, len(payload))
	for name, value := range payload {
		if col, ok := passthroughFields[name]; ok {
			out[col] = value
			continue
		}
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		out[fmt.Sprintf("propertie_%d", i+1)] = value
	}
	return out, nil
}
