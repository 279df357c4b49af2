package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lodfresh/customer-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	query := `SELECT * FROM items ORDER BY id`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) FindAvailable(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	query := `SELECT * FROM items WHERE available = true ORDER BY id`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	query := `SELECT * FROM items WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &it, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *PGRepository) Save(ctx context.Context, item *model.Item) error {
	if item.ID == 0 {
		query := `
            INSERT INTO items (name, price, type, available, metadata)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `
		return r.DB.QueryRowxContext(ctx, query,
			item.Name, item.Price, item.Type, item.Available, item.Metadata,
		).Scan(&item.ID)
	}

	query := `
        UPDATE items
        SET name = :name, price = :price, type = :type, available = :available, metadata = :metadata
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, item)
	return err
}

func (r *PGRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE items SET available = $1 WHERE id = $2`, available, id)
	return err
}

func (r *PGRepository) DeleteAllInBatch(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM items`)
	return err
}
