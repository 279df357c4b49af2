package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lodfresh/customer-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	query := `SELECT * FROM order_items ORDER BY id`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) FindByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	query := `SELECT * FROM order_items WHERE order_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) SaveAll(ctx context.Context, items []*model.OrderItem) error {
	query := `
        INSERT INTO order_items (order_id, item_id, amount, total_price)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	for _, oi := range items {
		if err := r.DB.QueryRowxContext(ctx, query,
			oi.OrderID, oi.ItemID, oi.Amount, oi.TotalPrice,
		).Scan(&oi.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepository) DeleteAllInBatch(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM order_items`)
	return err
}
