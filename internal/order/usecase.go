package order

import (
	"context"

	"github.com/lodfresh/customer-service/internal/order/dto"
)

type UseCase interface {
	// ListOrders returns the current batch of orders with customer names
	// resolved, newest upload first mirroring the store order.
	ListOrders(ctx context.Context) ([]dto.OrderView, error)
	// GetOrderItems returns the lines of one order with item names resolved.
	GetOrderItems(ctx context.Context, orderID int64) ([]dto.OrderItemView, error)
}
