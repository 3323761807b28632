package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-form/internal/models"
)

// ProductRepository defines the interface for product data operations.
//
// Read matches names case-insensitively and returns products in ascending id
// order. Update and Remove return ErrProductNotFound when the id is unknown.
// Any other failure is a *StorageError.
type ProductRepository interface {
	Create(ctx context.Context, name string, quantity int) (models.Product, error)
	Read(ctx context.Context, filter string) ([]models.Product, error)
	Update(ctx context.Context, id int, name string, quantity int) error
	Remove(ctx context.Context, id int) error
}
