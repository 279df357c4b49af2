package customer

import (
	"context"
	"io"

	"github.com/lodfresh/customer-service/internal/customer/dto"
	"github.com/lodfresh/customer-service/internal/model"
)

type UseCase interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error

	// ImportCSV parses a headed CSV of customers and persists every row.
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	// ExportCSV renders all customers as a name,phones,address CSV blob.
	ExportCSV(ctx context.Context) ([]byte, error)

	// SearchByNames resolves each non-empty line of the query against
	// customers that own at least one order, with their latest upload time.
	SearchByNames(ctx context.Context, names string) ([]dto.CustomerSearchResult, error)
	// MatchForgotten reports persisted customers whose exact name appears
	// in the uploaded forgotten-orders CSV.
	MatchForgotten(ctx context.Context, r io.Reader) ([]model.Customer, error)
}
