package usecase

import (
	"context"

	"github.com/lodfresh/customer-service/internal/customer"
	"github.com/lodfresh/customer-service/internal/item"
	"github.com/lodfresh/customer-service/internal/order"
	"github.com/lodfresh/customer-service/internal/order/dto"
	"github.com/lodfresh/customer-service/internal/orderitem"
	"github.com/lodfresh/customer-service/pkg/logger"
)

type orderUseCase struct {
	orders     order.Repository
	orderItems orderitem.Repository
	customers  customer.Repository
	items      item.Repository
	logger     logger.ZapLogger
}

func NewOrderUseCase(
	orders order.Repository,
	orderItems orderitem.Repository,
	customers customer.Repository,
	items item.Repository,
	log logger.ZapLogger,
) order.UseCase {
	return &orderUseCase{
		orders:     orders,
		orderItems: orderItems,
		customers:  customers,
		items:      items,
		logger:     log,
	}
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]dto.OrderView, error) {
	orders, err := uc.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	views := make([]dto.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, dto.OrderView{
			ID:           o.ID,
			Date:         o.Date,
			CustomerID:   o.CustomerID,
			CustomerName: names[o.CustomerID],
			UploadedAt:   o.UploadedAt,
		})
	}
	return views, nil
}

func (uc *orderUseCase) GetOrderItems(ctx context.Context, orderID int64) ([]dto.OrderItemView, error) {
	lines, err := uc.orderItems.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := uc.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(items))
	for _, it := range items {
		names[it.ID] = it.Name
	}

	views := make([]dto.OrderItemView, 0, len(lines))
	for _, oi := range lines {
		views = append(views, dto.OrderItemView{
			ID:         oi.ID,
			ItemID:     oi.ItemID,
			ItemName:   names[oi.ItemID],
			Amount:     oi.Amount,
			TotalPrice: oi.TotalPrice,
		})
	}
	return views, nil
}
