package ingest

import (
	"strings"
	"time"

	"github.com/lodfresh/customer-service/internal/model"
)

// Batch is the full reconciled output of one upload, committed as a single
// replace transaction. Customers holds only newly materialized records;
// orders referencing already-persisted customers keep that reference.
type Batch struct {
	Customers  []*model.Customer
	Items      []*model.Item
	Orders     []*model.Order
	OrderItems []*model.OrderItem
}

// Reconciler resolves parsed customer names against the in-batch working
// set first and the persisted set second, materializing new records only
// when both lookups miss. Items are different: the commit wipes the items
// table, so every item name in the sheet materializes a fresh in-batch
// record and only the working set deduplicates. Seeding items from rows
// that are about to be deleted would hand the commit stale ids.
// Stateful across the whole event stream of one import.
type Reconciler struct {
	workingCustomers   map[string]*model.Customer
	persistedCustomers map[string]*model.Customer
	workingItems       map[string]*model.Item

	batch Batch
	now   time.Time

	currentCustomer *model.Customer
	currentOrder    *model.Order
}

func NewReconciler(persistedCustomers []model.Customer, now time.Time) *Reconciler {
	r := &Reconciler{
		workingCustomers:   map[string]*model.Customer{},
		persistedCustomers: map[string]*model.Customer{},
		workingItems:       map[string]*model.Item{},
		now:                now,
	}
	for i := range persistedCustomers {
		c := persistedCustomers[i]
		r.persistedCustomers[strings.ToLower(c.Name)] = &c
	}
	return r
}

// Run applies one event stream. Each call starts with a closed block
// cursor, matching the independent column passes over the sheet; working
// sets carry over between calls.
func (r *Reconciler) Run(events []Event) {
	r.currentCustomer = nil
	r.currentOrder = nil
	for _, ev := range events {
		r.apply(ev)
	}
}

// Batch returns everything reconciled so far.
func (r *Reconciler) Batch() *Batch {
	return &r.batch
}

func (r *Reconciler) apply(ev Event) {
	switch ev.Kind {
	case EventNewCustomer:
		if ev.CustomerName == "" {
			r.currentCustomer = nil
			r.currentOrder = nil
			return
		}
		r.currentCustomer = r.resolveCustomer(ev.CustomerName, ev.Phone)
		r.currentOrder = &model.Order{
			Date:       r.now,
			UploadedAt: r.now,
			Customer:   r.currentCustomer,
			CustomerID: r.currentCustomer.ID,
		}
		r.batch.Orders = append(r.batch.Orders, r.currentOrder)

	case EventLineItem:
		if r.currentOrder == nil {
			return
		}
		quantity, total, unitPrice, itemType := LineValues(ev.QuantityText, ev.PriceText)
		if quantity == 0 || unitPrice <= 0 {
			// Malformed line. Dropped, not fatal.
			return
		}
		it := r.resolveItem(ev.Product, unitPrice, itemType)
		if it == nil {
			return
		}
		r.batch.OrderItems = append(r.batch.OrderItems, &model.OrderItem{
			Order:      r.currentOrder,
			Item:       it,
			Amount:     quantity,
			TotalPrice: total,
		})
	}
}

func (r *Reconciler) resolveCustomer(name, phone string) *model.Customer {
	key := strings.ToLower(name)
	if c, ok := r.workingCustomers[key]; ok {
		return c
	}
	if c, ok := r.persistedCustomers[key]; ok {
		r.workingCustomers[key] = c
		return c
	}
	c := &model.Customer{Name: name, Phones: phone}
	r.workingCustomers[key] = c
	r.batch.Customers = append(r.batch.Customers, c)
	return c
}

func (r *Reconciler) resolveItem(name string, price float64, itemType model.ItemType) *model.Item {
	key := strings.ToLower(name)
	if it, ok := r.workingItems[key]; ok {
		return it
	}
	it := &model.Item{
		Name:      name,
		Price:     price,
		Type:      itemType,
		Available: false,
		Metadata:  "Imported",
	}
	r.workingItems[key] = it
	r.batch.Items = append(r.batch.Items, it)
	return it
}
