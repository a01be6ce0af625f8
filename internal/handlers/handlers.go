package handlers

import (
	"StarWarsBlog/internal/config"
	"StarWarsBlog/internal/middleware"
	"StarWarsBlog/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	userService *service.UserService,
	favoriteService *service.FavoriteService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	itemHandler := NewItemHandler(itemService, logger)
	userHandler := NewUserHandler(userService, logger, config)
	favoriteHandler := NewFavoriteHandler(favoriteService, logger)

	// индекс эндпоинтов на корне
	r.Get("/", sitemap)

	// Item routes
	r.Post("/api/items", itemHandler.Ingest)
	r.Get("/api/items/{type}/{uid}", itemHandler.Get)
	r.Put("/api/items/{type}/{uid}", itemHandler.Update)
	r.Delete("/api/items/{type}/{uid}", itemHandler.Delete)

	// User routes
	r.Post("/api/users", userHandler.Register)
	r.Get("/api/users", userHandler.List)
	r.Post("/api/users/login", userHandler.Login)

	// Favorite routes
	r.Post("/api/users/{userID}/favorites", favoriteHandler.Add)
	r.Get("/api/users/{userID}/favorites", favoriteHandler.List)
	r.Delete("/api/favorites/{favoriteID}", favoriteHandler.Delete)

	return &Handler{Router: r}
}

func sitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"endpoints": []string{
			"POST /api/items",
			"GET /api/items/{type}/{uid}",
			"PUT /api/items/{type}/{uid}",
			"DELETE /api/items/{type}/{uid}",
			"POST /api/users",
			"GET /api/users",
			"POST /api/users/login",
			"POST /api/users/{userID}/favorites",
			"GET /api/users/{userID}/favorites",
			"DELETE /api/favorites/{favoriteID}",
		},
	})
}
