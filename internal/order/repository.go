package order

import (
	"context"
	"time"

	"github.com/lodfresh/customer-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, o *model.Order) error
	DeleteAllInBatch(ctx context.Context) error

	// FindDistinctCustomersByNameContaining returns customers owning at
	// least one order whose name contains the fragment, case-insensitive.
	FindDistinctCustomersByNameContaining(ctx context.Context, name string) ([]model.Customer, error)
	// FindLatestUploadedAt reports when the customer's most recent order
	// batch was ingested, or nil when the customer has no orders.
	FindLatestUploadedAt(ctx context.Context, customerID int64) (*time.Time, error)
}
