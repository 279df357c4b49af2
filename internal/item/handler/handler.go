package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lodfresh/customer-service/internal/item"
	"github.com/lodfresh/customer-service/internal/item/dto"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type ItemHandler struct {
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{uc: uc, logger: log}
}

func (h *ItemHandler) Register(r chi.Router) {
	r.Get("/items", h.handleList)
	r.Post("/items/{id}/availability", h.handleSetAvailability)
	r.Post("/items/{id}/availability/toggle", h.handleToggleAvailability)
}

func (h *ItemHandler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListItems(r.Context())
	if err != nil {
		h.logger.Error("failed to list items", zap.Error(err))
		http.Error(w, "failed to list items", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

// Availability mutations go through the command topic; the listener applies
// them, so the HTTP response only acknowledges the publish.
func (h *ItemHandler) handleSetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var body struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := h.uc.PublishCommand(r.Context(), dto.ActionUpdate, id, body.Available); err != nil {
		h.logger.Error("failed to publish availability command", zap.Int64("id", id), zap.Error(err))
		http.Error(w, "failed to publish command", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *ItemHandler) handleToggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.uc.PublishCommand(r.Context(), dto.ActionToggle, id, false); err != nil {
		h.logger.Error("failed to publish toggle command", zap.Int64("id", id), zap.Error(err))
		http.Error(w, "failed to publish command", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
