package repo

import (
	"context"
	"database/sql"
	"time"

	models "github.com/rogerio-castellano/inventory-form/internal/models"
)

type PostgresProductRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresProductRepository(db *sql.DB, timeout time.Duration) *PostgresProductRepository {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &PostgresProductRepository{db: db, timeout: timeout}
}

func (r *PostgresProductRepository) Create(ctx context.Context, name string, quantity int) (models.Product, error) {
	query := `INSERT INTO products (name, quantity) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p := models.Product{Name: name, Quantity: quantity}
	if err := r.db.QueryRowContext(ctx, query, name, quantity).Scan(&p.ID); err != nil {
		return models.Product{}, storageErr("create", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) Read(ctx context.Context, filter string) ([]models.Product, error) {
	query := `SELECT id, name, quantity FROM products`
	args := []any{}
	if filter != "" {
		query += ` WHERE name ILIKE $1 ESCAPE '\'`
		args = append(args, likePattern(filter))
	}
	query += " ORDER BY id"

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("read", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity); err != nil {
			return nil, storageErr("read", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read", err)
	}
	return products, nil
}

func (r *PostgresProductRepository) Update(ctx context.Context, id int, name string, quantity int) error {
	query := `UPDATE products SET name = $1, quantity = $2, updated_at = $3 WHERE id = $4`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, name, quantity, time.Now().UTC(), id)
	if err != nil {
		return storageErr("update", err)
	}
	return notFoundIfUnaffected("update", res)
}

func (r *PostgresProductRepository) Remove(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storageErr("remove", err)
	}
	return notFoundIfUnaffected("remove", res)
}

func notFoundIfUnaffected(op string, res sql.Result) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
