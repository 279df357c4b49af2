package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/lodfresh/customer-service/internal/model"
	"github.com/lodfresh/customer-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct{ orders []model.Order }

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) { return f.orders, nil }
func (f *fakeOrderRepo) Save(ctx context.Context, o *model.Order) error     { return nil }
func (f *fakeOrderRepo) DeleteAllInBatch(ctx context.Context) error         { return nil }
func (f *fakeOrderRepo) FindDistinctCustomersByNameContaining(ctx context.Context, name string) ([]model.Customer, error) {
	return nil, nil
}
func (f *fakeOrderRepo) FindLatestUploadedAt(ctx context.Context, customerID int64) (*time.Time, error) {
	return nil, nil
}

type fakeOrderItemRepo struct{ items []model.OrderItem }

func (f *fakeOrderItemRepo) FindAll(ctx context.Context) ([]model.OrderItem, error) {
	return f.items, nil
}
func (f *fakeOrderItemRepo) FindByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	out := []model.OrderItem{}
	for _, oi := range f.items {
		if oi.OrderID == orderID {
			out = append(out, oi)
		}
	}
	return out, nil
}
func (f *fakeOrderItemRepo) SaveAll(ctx context.Context, items []*model.OrderItem) error {
	return nil
}
func (f *fakeOrderItemRepo) DeleteAllInBatch(ctx context.Context) error { return nil }

type fakeCustomerRepo struct{ customers []model.Customer }

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	return f.customers, nil
}
func (f *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Save(ctx context.Context, c *model.Customer) error       { return nil }
func (f *fakeCustomerRepo) SaveAll(ctx context.Context, cs []*model.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id int64) error              { return nil }

type fakeItemRepo struct{ items []model.Item }

func (f *fakeItemRepo) FindAll(ctx context.Context) ([]model.Item, error)       { return f.items, nil }
func (f *fakeItemRepo) FindAvailable(ctx context.Context) ([]model.Item, error) { return nil, nil }
func (f *fakeItemRepo) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Save(ctx context.Context, item *model.Item) error { return nil }
func (f *fakeItemRepo) SetAvailability(ctx context.Context, id int64, available bool) error {
	return nil
}
func (f *fakeItemRepo) DeleteAllInBatch(ctx context.Context) error { return nil }

func testLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "json", DisableCaller: true, DisableStacktrace: true})
}

func TestListOrders_ResolvesCustomerNames(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	uc := NewOrderUseCase(
		&fakeOrderRepo{orders: []model.Order{{ID: 1, Date: when, CustomerID: 9, UploadedAt: when}}},
		&fakeOrderItemRepo{},
		&fakeCustomerRepo{customers: []model.Customer{{ID: 9, Name: "John Doe"}}},
		&fakeItemRepo{},
		testLogger(),
	)

	views, err := uc.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "John Doe", views[0].CustomerName)
	assert.Equal(t, int64(9), views[0].CustomerID)
}

func TestGetOrderItems_FiltersByOrderAndResolvesItemNames(t *testing.T) {
	uc := NewOrderUseCase(
		&fakeOrderRepo{},
		&fakeOrderItemRepo{items: []model.OrderItem{
			{ID: 1, OrderID: 5, ItemID: 2, Amount: 2, TotalPrice: 20},
			{ID: 2, OrderID: 6, ItemID: 2, Amount: 1, TotalPrice: 10},
		}},
		&fakeCustomerRepo{},
		&fakeItemRepo{items: []model.Item{{ID: 2, Name: "Tomato"}}},
		testLogger(),
	)

	views, err := uc.GetOrderItems(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Tomato", views[0].ItemName)
	assert.Equal(t, 2.0, views[0].Amount)
}
