package repo

import (
	"StarWarsBlog/internal/model"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// cache=shared переживает между тестами — начинаем с чистых таблиц
	_ = db.Migrator().DropTable(&model.Favorite{}, &model.Properties{}, &model.Item{}, &model.User{})
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.Properties{}, &model.Favorite{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
