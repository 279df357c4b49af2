package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lodfresh/customer-service/internal/ingest"
	"github.com/lodfresh/customer-service/internal/model"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type PGRepository struct {
	DB     *sqlx.DB
	logger logger.ZapLogger
}

func NewPGRepository(db *sqlx.DB, log logger.ZapLogger) *PGRepository {
	return &PGRepository{DB: db, logger: log}
}

// ReplaceAll commits one import batch inside a single transaction:
// wipe order items, orders and items in dependency order, then persist the
// batch while rewiring every reference onto the just-persisted rows.
// Customers are never bulk deleted; collaborators outside the import may
// still reference them.
func (r *PGRepository) ReplaceAll(ctx context.Context, batch *ingest.Batch) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"order_items", "orders", "items"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	persistedCustomers := map[string]*model.Customer{}
	for _, c := range batch.Customers {
		query := `
            INSERT INTO customers (user_id, name, phones, address, email, default_package, metadata)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id
        `
		if err := tx.QueryRowxContext(ctx, query,
			c.UserID, c.Name, c.Phones, c.Address, c.Email, c.DefaultPackage, c.Metadata,
		).Scan(&c.ID); err != nil {
			return fmt.Errorf("insert customer %q: %w", c.Name, err)
		}
		persistedCustomers[strings.ToLower(c.Name)] = c
	}

	persistedItems := map[string]*model.Item{}
	for _, it := range batch.Items {
		query := `
            INSERT INTO items (name, price, type, available, metadata)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `
		if err := tx.QueryRowxContext(ctx, query,
			it.Name, it.Price, it.Type, it.Available, it.Metadata,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert item %q: %w", it.Name, err)
		}
		persistedItems[strings.ToLower(it.Name)] = it
	}

	// Insertion order is preserved: the fallback scan below relies on it.
	persistedOrders := make([]*model.Order, 0, len(batch.Orders))
	for _, o := range batch.Orders {
		// Re-resolve the customer by name in case the in-memory
		// reference diverged from what was just persisted.
		if o.Customer != nil {
			if pc, ok := persistedCustomers[strings.ToLower(o.Customer.Name)]; ok {
				o.Customer = pc
			}
			o.CustomerID = o.Customer.ID
		}
		query := `
            INSERT INTO orders (date, customer_id, uploaded_at, package_value, selected_package)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `
		if err := tx.QueryRowxContext(ctx, query,
			o.Date, o.CustomerID, o.UploadedAt, o.PackageValue, o.SelectedPackage,
		).Scan(&o.ID); err != nil {
			return fmt.Errorf("insert order for %q: %w", customerName(o), err)
		}
		persistedOrders = append(persistedOrders, o)
	}

	for _, oi := range batch.OrderItems {
		if oi.Item != nil {
			if pi, ok := persistedItems[strings.ToLower(oi.Item.Name)]; ok {
				oi.Item = pi
			}
		}
		if oi.Item == nil || oi.Item.ID == 0 {
			r.logger.Warn("dropping order item without a persisted item",
				zap.String("item", itemName(oi)))
			continue
		}
		oi.ItemID = oi.Item.ID

		if oi.Order == nil || oi.Order.ID == 0 {
			oi.Order = matchOrderByCustomer(persistedOrders, oi.Order)
		}
		if oi.Order == nil || oi.Order.ID == 0 {
			r.logger.Warn("dropping order item without a persisted order",
				zap.String("item", oi.Item.Name))
			continue
		}
		oi.OrderID = oi.Order.ID

		query := `
            INSERT INTO order_items (order_id, item_id, amount, total_price)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `
		if err := tx.QueryRowxContext(ctx, query,
			oi.OrderID, oi.ItemID, oi.Amount, oi.TotalPrice,
		).Scan(&oi.ID); err != nil {
			return fmt.Errorf("insert order item %q: %w", oi.Item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import transaction: %w", err)
	}
	return nil
}

// matchOrderByCustomer is the best-effort fallback: first persisted order
// whose customer name matches, in insertion order. O(n) per order item,
// fine at current volumes.
func matchOrderByCustomer(persisted []*model.Order, o *model.Order) *model.Order {
	if o == nil || o.Customer == nil {
		return nil
	}
	want := strings.ToLower(o.Customer.Name)
	for _, p := range persisted {
		if p.Customer != nil && strings.ToLower(p.Customer.Name) == want {
			return p
		}
	}
	return nil
}

func customerName(o *model.Order) string {
	if o.Customer == nil {
		return ""
	}
	return o.Customer.Name
}

func itemName(oi *model.OrderItem) string {
	if oi.Item == nil {
		return ""
	}
	return oi.Item.Name
}
