package main

import (
	"StarWarsBlog/internal/config"
	"StarWarsBlog/internal/handlers"
	"StarWarsBlog/internal/middleware"
	"StarWarsBlog/internal/repo"
	"StarWarsBlog/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	itemRepo := repo.NewItemRepository(gormDB)
	propRepo := repo.NewPropertyRepository(gormDB)
	userRepo := repo.NewUserRepository(gormDB)
	favoriteRepo := repo.NewFavoriteRepository(gormDB)

	itemService := service.NewItemService(itemRepo, propRepo, sugar)
	userService := service.NewUserService(userRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)

	h := handlers.NewHandler(itemService, userService, favoriteService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
