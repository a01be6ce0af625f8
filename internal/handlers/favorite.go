package handlers

import (
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/repo"
	"StarWarsBlog/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FavoriteHandler обрабатывает закладки пользователя.
type FavoriteHandler struct {
	FavoriteService *service.FavoriteService
	Logger          *zap.SugaredLogger
}

// NewFavoriteHandler создаёт хендлер favorites
func NewFavoriteHandler(favoriteService *service.FavoriteService, logger *zap.SugaredLogger) *FavoriteHandler {
	return &FavoriteHandler{FavoriteService: favoriteService, Logger: logger}
}

type AddFavoriteRequest struct {
	ItemID int64 `json:"item_id"`
}

type FavoriteDTO struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	ItemID int64 `json:"item_id"`
}

func toFavoriteDTO(f *model.Favorite) FavoriteDTO {
	return FavoriteDTO{ID: f.ID, UserID: f.UserID, ItemID: f.ItemID}
}

// Add создаёт закладку; дубликат — 409, превышение лимита — 400.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Add favorite: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.ItemID == 0 {
		http.Error(w, "item_id is required", http.StatusBadRequest)
		return
	}

	fav, err := h.FavoriteService.Add(r.Context(), userID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicateFavorite):
			http.Error(w, "favorite already exists", http.StatusConflict)
		case errors.Is(err, repo.ErrFavoriteLimit):
			http.Error(w, "favorites limit reached", http.StatusBadRequest)
		default:
			h.Logger.Errorw("Add favorite: service error", "user_id", userID, "item_id", req.ItemID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toFavoriteDTO(fav))
}

// List отдаёт все закладки пользователя.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	favs, err := h.FavoriteService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List favorites: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]FavoriteDTO, 0, len(favs))
	for i := range favs {
		out = append(out, toFavoriteDTO(&favs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete убирает закладку по её id.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := strconv.ParseInt(chi.URLParam(r, "favoriteID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid favorite id", http.StatusBadRequest)
		return
	}

	if err := h.FavoriteService.Delete(r.Context(), favoriteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "favorite not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete favorite: service error", "favorite_id", favoriteID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"done": true, "message": "favorite deleted"})
}
