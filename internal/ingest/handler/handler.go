package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lodfresh/customer-service/internal/ingest"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type IngestHandler struct {
	uc     ingest.UseCase
	logger logger.ZapLogger
}

func NewIngestHandler(uc ingest.UseCase, log logger.ZapLogger) *IngestHandler {
	return &IngestHandler{uc: uc, logger: log}
}

func (h *IngestHandler) Register(r chi.Router) {
	r.Post("/upload-orders-excel", h.handleUpload)
}

func (h *IngestHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "please select a file to upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	summary, err := h.uc.ImportWorkbook(r.Context(), file)
	if err != nil {
		h.logger.Error("order upload failed", zap.Error(err))
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summary)
}
