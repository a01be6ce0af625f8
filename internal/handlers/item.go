package handlers

import (
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/repo"
	"StarWarsBlog/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает batch-загрузку и CRUD элементов каталога.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// IngestRequest — батч записей в уже плоском (generic-слоты) виде.
type IngestRequest struct {
	Items []IngestItemDTO `json:"items"`
}

// IngestItemDTO — одна запись батча.
type IngestItemDTO struct {
	TypeItem    string              `json:"type_item"`
	PropID      string              `json:"prop_id"`
	Description string              `json:"description"`
	UID         string              `json:"uid"`
	Version     int64               `json:"version"`
	Properties  IngestPropertiesDTO `json:"properties"`
}

// IngestPropertiesDTO — плоский мешок свойств записи.
type IngestPropertiesDTO struct {
	PropertieID string `json:"propertie_id"`
	Created     string `json:"created"`
	Edited      string `json:"edited"`
	Propertie1  string `json:"propertie_1"`
	Propertie2  string `json:"propertie_2"`
	Propertie3  string `json:"propertie_3"`
	Propertie4  string `json:"propertie_4"`
	Propertie5  string `json:"propertie_5"`
	Propertie6  string `json:"propertie_6"`
	Propertie7  string `json:"propertie_7"`
	Propertie8  string `json:"propertie_8"`
	Propertie9  string `json:"propertie_9"`
	URL         string `json:"url"`
}

// IngestResponse — общий итог батча: либо все записи легли, либо ни одной.
type IngestResponse struct {
	Done    bool   `json:"done"`
	Message string `json:"message"`
}

// ItemResponse — элемент с раскрытыми именованными полями свойств.
type ItemResponse struct {
	UID         string            `json:"uid"`
	Description string            `json:"description"`
	Version     int64             `json:"version"`
	Properties  map[string]string `json:"properties"`
}

// UpdateItemRequest — новый description плюс частичное обновление свойств
// в именованных полях типа.
type UpdateItemRequest struct {
	Description string            `json:"description"`
	Properties  map[string]string `json:"properties"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Ingest грузит батч элементов с их свойствами.
func (h *ItemHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Ingest: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, IngestResponse{Done: false, Message: "invalid input"})
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, IngestResponse{Done: false, Message: "invalid input"})
		return
	}

	entries := make([]repo.IngestEntry, 0, len(req.Items))
	for _, it := range req.Items {
		p := it.Properties
		entries = append(entries, repo.IngestEntry{
			Item: model.Item{
				TypeItem:    model.ItemType(it.TypeItem),
				PropID:      it.PropID,
				Description: it.Description,
				UID:         it.UID,
				Version:     it.Version,
			},
			Properties: model.Properties{
				PropertieID: p.PropertieID,
				Created:     p.Created,
				Edited:      p.Edited,
				Propertie1:  p.Propertie1,
				Propertie2:  p.Propertie2,
				Propertie3:  p.Propertie3,
				Propertie4:  p.Propertie4,
				Propertie5:  p.Propertie5,
				Propertie6:  p.Propertie6,
				Propertie7:  p.Propertie7,
				Propertie8:  p.Propertie8,
				Propertie9:  p.Propertie9,
				URL:         p.URL,
			},
		})
	}

	if err := h.ItemService.Ingest(r.Context(), entries); err != nil {
		h.Logger.Warnw("Ingest: batch rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, IngestResponse{Done: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, IngestResponse{Done: true, Message: "items loaded"})
}

// Get отдаёт элемент по (type, uid) с именованными свойствами.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	typeItem := model.ItemType(chi.URLParam(r, "type"))
	uid := chi.URLParam(r, "uid")

	view, err := h.ItemService.Get(r.Context(), typeItem, uid)
	if err != nil {
		h.itemError(w, "Get", typeItem, uid, err)
		return
	}

	writeJSON(w, http.StatusOK, ItemResponse{
		UID:         view.UID,
		Description: view.Description,
		Version:     view.Version,
		Properties:  view.Properties,
	})
}

// Update заменяет description и частично обновляет свойства.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	typeItem := model.ItemType(chi.URLParam(r, "type"))
	uid := chi.URLParam(r, "uid")

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	newVersion, err := h.ItemService.Update(r.Context(), typeItem, uid, service.UpdateRequest{
		Description: req.Description,
		Properties:  req.Properties,
	})
	if err != nil {
		h.itemError(w, "Update", typeItem, uid, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"uid": uid, "version": newVersion})
}

// Delete убирает элемент вместе с его свойствами.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	typeItem := model.ItemType(chi.URLParam(r, "type"))
	uid := chi.URLParam(r, "uid")

	if err := h.ItemService.Delete(r.Context(), typeItem, uid); err != nil {
		h.itemError(w, "Delete", typeItem, uid, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"done": true, "message": "item deleted"})
}

// itemError переводит ошибки сервиса в HTTP-статусы. Отсутствие Item и
// отсутствие Properties отдаются разными сообщениями.
func (h *ItemHandler) itemError(w http.ResponseWriter, op string, typeItem model.ItemType, uid string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownItemType), errors.Is(err, service.ErrUnknownField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repo.ErrItemNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrPropertiesNotFound):
		http.Error(w, "properties not found", http.StatusNotFound)
	default:
		h.Logger.Errorw(op+": service error", "type", typeItem, "uid", uid, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
