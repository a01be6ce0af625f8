package model

// ItemType — тип элемента каталога. Определяет, как раскрываются
// generic-слоты его Properties в именованные поля.
type ItemType string

const (
	TypePeople  ItemType = "people"
	TypePlanets ItemType = "planets"
)

// Item — серверная модель элемента каталога (запись people или planets).
// Метаданные хранятся здесь, а фактические атрибуты — в строке Properties,
// связанной через PropID (1:1).
type Item struct {
	ID       int64    `gorm:"primaryKey;autoIncrement"`
	TypeItem ItemType `gorm:"type:varchar(20);not null;index:idx_items_type_uid,unique,priority:1"`

	// PropID — внешний идентификатор источника; ключ записи на пути записи.
	PropID string `gorm:"size:50;not null;uniqueIndex"`

	Description string `gorm:"size:255;not null"`

	// UID — идентификатор источника; вместе с TypeItem — ключ на пути чтения.
	UID string `gorm:"size:50;not null;index:idx_items_type_uid,unique,priority:2"`

	// Version увеличивается ровно на 1 при каждом обновлении.
	Version int64 `gorm:"not null"`
}

func (Item) TableName() string {
	return "items"
}

// KnownType сообщает, известен ли тип слою проекции.
func KnownType(t ItemType) bool {
	return t == TypePeople || t == TypePlanets
}
