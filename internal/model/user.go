package model

import "time"

// User — зарегистрированный пользователь блога.
// Password хранит bcrypt-хеш, никогда не отдаётся наружу.
type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	FirstName   string    `gorm:"size:50;not null"`
	LastName    string    `gorm:"size:50;not null"`
	Email       string    `gorm:"size:50;not null;uniqueIndex"`
	Password    string    `gorm:"size:100;not null"`
	MemberSince time.Time `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
