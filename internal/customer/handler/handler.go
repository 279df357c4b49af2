package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lodfresh/customer-service/internal/customer"
	"github.com/lodfresh/customer-service/internal/customer/dto"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: log}
}

func (h *CustomerHandler) Register(r chi.Router) {
	r.Get("/customers", h.handleList)
	r.Post("/customers", h.handleCreate)
	r.Delete("/customers/{id}", h.handleDelete)
	r.Get("/customers/export", h.handleExport)
	r.Post("/upload-customers-csv", h.handleImportCSV)
	r.Post("/customers/search-by-names", h.handleSearchByNames)
	r.Post("/upload-forgotten-orders-csv", h.handleForgotten)
}

func (h *CustomerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.uc.ListCustomers(r.Context())
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		http.Error(w, "failed to list customers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(customers)
}

func (h *CustomerHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	c, err := h.uc.CreateCustomer(r.Context(), &input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

func (h *CustomerHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}
	if err := h.uc.DeleteCustomer(r.Context(), id); err != nil {
		h.logger.Error("failed to delete customer", zap.Int64("id", id), zap.Error(err))
		http.Error(w, "failed to delete customer", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	blob, err := h.uc.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("failed to export customers", zap.Error(err))
		http.Error(w, "failed to export customers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=customers.csv")
	_, _ = w.Write(blob)
}

func (h *CustomerHandler) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "please select a file to upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	count, err := h.uc.ImportCSV(r.Context(), file)
	if err != nil {
		h.logger.Error("customer csv import failed", zap.Error(err))
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"imported": count})
}

func (h *CustomerHandler) handleSearchByNames(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Names string `json:"names"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	results, err := h.uc.SearchByNames(r.Context(), body.Names)
	if err != nil {
		h.logger.Error("customer search failed", zap.Error(err))
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}

func (h *CustomerHandler) handleForgotten(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "please select a file to upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	matched, err := h.uc.MatchForgotten(r.Context(), file)
	if err != nil {
		h.logger.Error("forgotten orders matching failed", zap.Error(err))
		http.Error(w, "processing failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"count":   len(matched),
		"results": matched,
	})
}
