package model

// Favorite — закладка пользователя на Item.
// На пользователя не больше пяти, пара (user_id, item_id) уникальна.
type Favorite struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	UserID int64 `gorm:"not null;index:idx_favorites_user_item,unique,priority:1"`
	ItemID int64 `gorm:"not null;index:idx_favorites_user_item,unique,priority:2"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Item *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}
