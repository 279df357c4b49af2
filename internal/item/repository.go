package item

import (
	"context"

	"github.com/lodfresh/customer-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Item, error)
	FindAvailable(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id int64) (*model.Item, error)
	Save(ctx context.Context, item *model.Item) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	DeleteAllInBatch(ctx context.Context) error
}
