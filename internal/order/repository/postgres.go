package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lodfresh/customer-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	query := `SELECT * FROM orders ORDER BY id`
	if err := r.DB.SelectContext(ctx, &orders, query); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PGRepository) Save(ctx context.Context, o *model.Order) error {
	if o.ID == 0 {
		query := `
            INSERT INTO orders (date, customer_id, uploaded_at, package_value, selected_package)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `
		return r.DB.QueryRowxContext(ctx, query,
			o.Date, o.CustomerID, o.UploadedAt, o.PackageValue, o.SelectedPackage,
		).Scan(&o.ID)
	}

	query := `
        UPDATE orders
        SET date = :date, customer_id = :customer_id, uploaded_at = :uploaded_at,
            package_value = :package_value, selected_package = :selected_package
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *PGRepository) DeleteAllInBatch(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM orders`)
	return err
}

func (r *PGRepository) FindDistinctCustomersByNameContaining(ctx context.Context, name string) ([]model.Customer, error) {
	customers := []model.Customer{}
	query := `
        SELECT DISTINCT c.*
        FROM customers c
        JOIN orders o ON o.customer_id = c.id
        WHERE c.name ILIKE '%' || $1 || '%'
    `
	if err := r.DB.SelectContext(ctx, &customers, query, name); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *PGRepository) FindLatestUploadedAt(ctx context.Context, customerID int64) (*time.Time, error) {
	// max() over zero rows yields NULL, so scan through NullTime.
	var uploadedAt sql.NullTime
	query := `SELECT max(uploaded_at) FROM orders WHERE customer_id = $1`
	err := r.DB.GetContext(ctx, &uploadedAt, query, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if !uploadedAt.Valid {
		return nil, nil
	}
	return &uploadedAt.Time, nil
}
