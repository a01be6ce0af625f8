package handlers_test

import (
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/repo"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestFavorite_Add(t *testing.T) {
	router, reps := newTestRouter(t)

	t.Run("created", func(t *testing.T) {
		reps.favs.On("Add", mock.Anything, int64(7), int64(3)).
			Return(&model.Favorite{ID: 1, UserID: 7, ItemID: 3}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/users/7/favorites", strings.NewReader(`{"item_id":3}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, float64(7), resp["user_id"])
		assert.Equal(t, float64(3), resp["item_id"])
	})

	t.Run("duplicate is conflict", func(t *testing.T) {
		reps.favs.On("Add", mock.Anything, int64(7), int64(4)).
			Return((*model.Favorite)(nil), repo.ErrDuplicateFavorite).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/users/7/favorites", strings.NewReader(`{"item_id":4}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("limit is bad request", func(t *testing.T) {
		reps.favs.On("Add", mock.Anything, int64(7), int64(5)).
			Return((*model.Favorite)(nil), repo.ErrFavoriteLimit).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/users/7/favorites", strings.NewReader(`{"item_id":5}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown user or item is not found", func(t *testing.T) {
		reps.favs.On("Add", mock.Anything, int64(99), int64(1)).
			Return((*model.Favorite)(nil), repo.ErrUserNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/users/99/favorites", strings.NewReader(`{"item_id":1}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		reps.favs.On("Add", mock.Anything, int64(7), int64(99)).
			Return((*model.Favorite)(nil), repo.ErrItemNotFound).Once()

		req = httptest.NewRequest(http.MethodPost, "/api/users/7/favorites", strings.NewReader(`{"item_id":99}`))
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing item_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users/7/favorites", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestFavorite_List(t *testing.T) {
	router, reps := newTestRouter(t)

	reps.favs.On("ListByUser", mock.Anything, int64(7)).Return([]model.Favorite{
		{ID: 1, UserID: 7, ItemID: 3},
		{ID: 2, UserID: 7, ItemID: 4},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/users/7/favorites", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestFavorite_Delete(t *testing.T) {
	router, reps := newTestRouter(t)

	t.Run("ok", func(t *testing.T) {
		reps.favs.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/favorites/1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		reps.favs.On("Delete", mock.Anything, int64(2)).Return(gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/favorites/2", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
