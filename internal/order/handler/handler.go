package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lodfresh/customer-service/internal/order"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) Register(r chi.Router) {
	r.Get("/orders", h.handleList)
	r.Get("/orders/{id}/items", h.handleItems)
}

func (h *OrderHandler) handleList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.uc.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(orders)
}

func (h *OrderHandler) handleItems(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	items, err := h.uc.GetOrderItems(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load order items", zap.Int64("order_id", id), zap.Error(err))
		http.Error(w, "failed to load order items", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}
