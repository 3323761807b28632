package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/inventory-form/internal/models"
)

// SQLiteProductRepository stores products in a local SQLite database file.
// The handle is expected to come from db.OpenSQLite, which creates the table.
type SQLiteProductRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSQLiteProductRepository wraps an open SQLite handle.
func NewSQLiteProductRepository(db *sql.DB, timeout time.Duration) *SQLiteProductRepository {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &SQLiteProductRepository{db: db, timeout: timeout}
}

// Create inserts a product and returns it with its generated id.
func (r *SQLiteProductRepository) Create(ctx context.Context, name string, quantity int) (models.Product, error) {
	query := `INSERT INTO products (name, quantity) VALUES (?, ?) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p := models.Product{Name: name, Quantity: quantity}
	if err := r.db.QueryRowContext(ctx, query, name, quantity).Scan(&p.ID); err != nil {
		return models.Product{}, storageErr("create", err)
	}
	return p, nil
}

// Read returns the products whose name contains filter, ignoring case.
// SQLite's LIKE folds ASCII letters only, so names are matched in Go with the
// same rule as the other stores.
func (r *SQLiteProductRepository) Read(ctx context.Context, filter string) ([]models.Product, error) {
	query := `SELECT id, name, quantity FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
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
		if matchesFilter(p.Name, filter) {
			products = append(products, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read", err)
	}
	return products, nil
}

// Update overwrites name and quantity of the product with the given id.
func (r *SQLiteProductRepository) Update(ctx context.Context, id int, name string, quantity int) error {
	query := `UPDATE products SET name = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, name, quantity, id)
	if err != nil {
		return storageErr("update", err)
	}
	return notFoundIfUnaffected("update", res)
}

// Remove deletes the product with the given id.
func (r *SQLiteProductRepository) Remove(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = ?`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storageErr("remove", err)
	}
	return notFoundIfUnaffected("remove", res)
}
