package item

import (
	"context"

	"github.com/lodfresh/customer-service/internal/model"
)

type UseCase interface {
	ListItems(ctx context.Context) ([]model.Item, error)

	// SetAvailability and ToggleAvailability mutate the flag directly and
	// drop any cached price list derived from it.
	SetAvailability(ctx context.Context, id int64, available bool) (*model.Item, error)
	ToggleAvailability(ctx context.Context, id int64) (*model.Item, error)

	// PublishCommand emits an availability command onto the items-commands
	// topic; the listener applies it asynchronously.
	PublishCommand(ctx context.Context, action string, id int64, available bool) error
}
