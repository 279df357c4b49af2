package ingest

import (
	"testing"
	"time"

	"github.com/lodfresh/customer-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestReconciler_NewCustomerAndOrder(t *testing.T) {
	r := NewReconciler(nil, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "John Doe", Phone: "052"},
		{Kind: EventLineItem, Product: "Tomato", QuantityText: "2", PriceText: "20"},
	})
	batch := r.Batch()

	assert.Len(t, batch.Customers, 1)
	assert.Equal(t, "John Doe", batch.Customers[0].Name)
	assert.Equal(t, "052", batch.Customers[0].Phones)

	assert.Len(t, batch.Orders, 1)
	assert.Equal(t, importedAt, batch.Orders[0].UploadedAt)
	assert.Same(t, batch.Customers[0], batch.Orders[0].Customer)

	assert.Len(t, batch.Items, 1)
	item := batch.Items[0]
	assert.Equal(t, "Tomato", item.Name)
	assert.Equal(t, 10.0, item.Price)
	assert.False(t, item.Available)
	assert.Equal(t, "Imported", item.Metadata)

	assert.Len(t, batch.OrderItems, 1)
	oi := batch.OrderItems[0]
	assert.Equal(t, 2.0, oi.Amount)
	assert.Equal(t, 20.0, oi.TotalPrice)
	assert.Same(t, batch.Orders[0], oi.Order)
	assert.Same(t, item, oi.Item)
}

func TestReconciler_PersistedCustomerIsReused(t *testing.T) {
	persisted := []model.Customer{{ID: 7, Name: "John Doe", Phones: "old"}}
	r := NewReconciler(persisted, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "JOHN DOE", Phone: "new"},
	})
	batch := r.Batch()

	assert.Empty(t, batch.Customers, "persisted match must not materialize a new customer")
	assert.Len(t, batch.Orders, 1)
	assert.Equal(t, int64(7), batch.Orders[0].CustomerID)
	assert.Equal(t, "old", batch.Orders[0].Customer.Phones, "persisted record wins over the sheet's phone")
}

func TestReconciler_ItemDedupIsCaseInsensitiveFirstWins(t *testing.T) {
	r := NewReconciler(nil, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "A"},
		{Kind: EventLineItem, Product: "Tomato", QuantityText: "1", PriceText: "10"},
		{Kind: EventLineItem, Product: "TOMATO", QuantityText: "2", PriceText: "40"},
	})
	batch := r.Batch()

	assert.Len(t, batch.Items, 1)
	assert.Equal(t, "Tomato", batch.Items[0].Name)
	assert.Equal(t, 10.0, batch.Items[0].Price, "first sighting fixes the price")

	assert.Len(t, batch.OrderItems, 2)
	assert.Same(t, batch.Items[0], batch.OrderItems[1].Item)
}

func TestReconciler_DropsZeroQuantityAndNonPositivePrice(t *testing.T) {
	r := NewReconciler(nil, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "A"},
		{Kind: EventLineItem, Product: "Free sample", QuantityText: "2", PriceText: "0"},
		{Kind: EventLineItem, Product: "Mystery", QuantityText: "0", PriceText: "10"},
		{Kind: EventLineItem, Product: "Refund", QuantityText: "1", PriceText: "-5"},
	})
	batch := r.Batch()

	assert.Empty(t, batch.OrderItems)
	assert.Empty(t, batch.Items, "a dropped line must not materialize its item either")
	assert.Len(t, batch.Orders, 1, "the customer's order still exists, just empty")
}

func TestReconciler_EmptyNameEventClosesBlock(t *testing.T) {
	r := NewReconciler(nil, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "A"},
		{Kind: EventNewCustomer, CustomerName: ""},
		{Kind: EventLineItem, Product: "Tomato", QuantityText: "1", PriceText: "10"},
	})
	batch := r.Batch()

	assert.Empty(t, batch.OrderItems)
	assert.Empty(t, batch.Items)
}

func TestReconciler_CursorResetsBetweenRunsButWorkingSetsCarryOver(t *testing.T) {
	r := NewReconciler(nil, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "A"},
		{Kind: EventLineItem, Product: "Tomato", QuantityText: "1", PriceText: "10"},
	})
	// Second pass starts with no open block, so the orphan line is dropped.
	r.Run([]Event{
		{Kind: EventLineItem, Product: "Cucumber", QuantityText: "1", PriceText: "5"},
		{Kind: EventNewCustomer, CustomerName: "a"},
		{Kind: EventLineItem, Product: "tomato", QuantityText: "3", PriceText: "30"},
	})
	batch := r.Batch()

	assert.Len(t, batch.Customers, 1, "same customer across passes")
	assert.Len(t, batch.Orders, 2, "each pass sighting opens its own order")
	assert.Len(t, batch.Items, 1, "item dedup spans passes")
	assert.Len(t, batch.OrderItems, 2)
	assert.Same(t, batch.Orders[1], batch.OrderItems[1].Order)
}

func TestReconciler_RepeatedCustomerOpensNewOrder(t *testing.T) {
	r := NewReconciler(nil, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "John Doe"},
		{Kind: EventLineItem, Product: "Tomato", QuantityText: "1", PriceText: "10"},
		{Kind: EventNewCustomer, CustomerName: "john doe"},
		{Kind: EventLineItem, Product: "Cucumber", QuantityText: "2", PriceText: "8"},
	})
	batch := r.Batch()

	assert.Len(t, batch.Customers, 1)
	assert.Len(t, batch.Orders, 2)
	assert.Same(t, batch.Orders[0].Customer, batch.Orders[1].Customer)
	assert.Same(t, batch.Orders[0], batch.OrderItems[0].Order)
	assert.Same(t, batch.Orders[1], batch.OrderItems[1].Order)
}

func TestReconciler_MaterializesItemsFreshEveryImport(t *testing.T) {
	// The commit wipes the items table, so an item name that already lives
	// in the database must still produce a fresh in-batch record. Carrying
	// the stored row would wire order items to an id that no longer exists
	// after the wipe.
	r := NewReconciler(nil, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "A"},
		{Kind: EventLineItem, Product: "tomato", QuantityText: "2", PriceText: "24"},
	})
	batch := r.Batch()

	require.Len(t, batch.Items, 1)
	assert.Equal(t, int64(0), batch.Items[0].ID, "fresh record, persisted by the commit")
	assert.Equal(t, 12.0, batch.Items[0].Price, "price derived from the sheet line")
	assert.Same(t, batch.Items[0], batch.OrderItems[0].Item)
}

func TestReconciler_EveryOrderItemBacksAnInBatchItem(t *testing.T) {
	persisted := []model.Customer{{ID: 7, Name: "John Doe"}}
	r := NewReconciler(persisted, importedAt)

	r.Run([]Event{
		{Kind: EventNewCustomer, CustomerName: "John Doe"},
		{Kind: EventLineItem, Product: "Tomato", QuantityText: "2", PriceText: "20"},
		{Kind: EventLineItem, Product: "Cucumber", QuantityText: "1", PriceText: "5"},
		{Kind: EventNewCustomer, CustomerName: "Jane Roe"},
		{Kind: EventLineItem, Product: "tomato", QuantityText: "3", PriceText: "30"},
	})
	batch := r.Batch()

	inBatch := map[*model.Item]bool{}
	for _, it := range batch.Items {
		inBatch[it] = true
	}
	for _, oi := range batch.OrderItems {
		assert.True(t, inBatch[oi.Item], "order item %q must reference a batch item", oi.Item.Name)
	}
}
