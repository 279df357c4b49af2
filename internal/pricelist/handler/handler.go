package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lodfresh/customer-service/internal/pricelist"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type PriceListHandler struct {
	uc     pricelist.UseCase
	logger logger.ZapLogger
}

func NewPriceListHandler(uc pricelist.UseCase, log logger.ZapLogger) *PriceListHandler {
	return &PriceListHandler{uc: uc, logger: log}
}

func (h *PriceListHandler) Register(r chi.Router) {
	r.Get("/leftovers", h.handleLeftovers)
}

// handleLeftovers returns the compiled price list as plain text and pushes
// it to the notification channel. Downstream renderers split on newlines,
// nothing more.
func (h *PriceListHandler) handleLeftovers(w http.ResponseWriter, r *http.Request) {
	report, err := h.uc.BuildAndNotify(r.Context())
	if err != nil {
		h.logger.Error("price list compilation failed", zap.Error(err))
		http.Error(w, "failed to build price list", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(report))
}
