package orderitem

import (
	"context"

	"github.com/lodfresh/customer-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.OrderItem, error)
	FindByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	SaveAll(ctx context.Context, items []*model.OrderItem) error
	DeleteAllInBatch(ctx context.Context) error
}
