package repo

import (
	"StarWarsBlog/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и накатывает миграции моделей.
// При пустом DSN поднимается локальный SQLite-файл (modernc, без cgo) —
// удобно для разработки без Postgres.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn != "" {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "starwarsblog.db"}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Properties{},
		&model.Favorite{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
