package ingest

import (
	"context"
	"io"
)

// ImportSummary reports what one upload produced.
type ImportSummary struct {
	BatchID      string `json:"batch_id"`
	NewCustomers int    `json:"new_customers"`
	Items        int    `json:"items"`
	Orders       int    `json:"orders"`
	OrderItems   int    `json:"order_items"`
}

type UseCase interface {
	// ImportWorkbook reads an uploaded XLSX document and replaces the
	// current items/orders/order-items with its content.
	ImportWorkbook(ctx context.Context, r io.Reader) (*ImportSummary, error)
	// ImportRows runs the same pipeline over already-decoded rows.
	ImportRows(ctx context.Context, rows []Row) (*ImportSummary, error)
}
