package customer

import (
	"context"

	"github.com/lodfresh/customer-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	Save(ctx context.Context, c *model.Customer) error
	SaveAll(ctx context.Context, customers []*model.Customer) error
	Delete(ctx context.Context, id int64) error
}
