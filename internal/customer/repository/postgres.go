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

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	query := `SELECT * FROM customers ORDER BY id DESC`
	if err := r.DB.SelectContext(ctx, &customers, query); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT * FROM customers WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) Save(ctx context.Context, c *model.Customer) error {
	if c.ID == 0 {
		query := `
            INSERT INTO customers (user_id, name, phones, address, email, default_package, metadata)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id
        `
		return r.DB.QueryRowxContext(ctx, query,
			c.UserID, c.Name, c.Phones, c.Address, c.Email, c.DefaultPackage, c.Metadata,
		).Scan(&c.ID)
	}

	query := `
        UPDATE customers
        SET user_id = :user_id, name = :name, phones = :phones, address = :address,
            email = :email, default_package = :default_package, metadata = :metadata
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) SaveAll(ctx context.Context, customers []*model.Customer) error {
	for _, c := range customers {
		if err := r.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}
