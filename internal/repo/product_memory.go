package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/inventory-form/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order, which is also ascending id order.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, name string, quantity int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product := models.Product{ID: r.nextID, Name: name, Quantity: quantity}
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// Read returns the products whose name contains filter.
func (r *InMemoryProductRepository) Read(_ context.Context, filter string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p.Name, filter) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(_ context.Context, id int, name string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Name = name
			r.products[i].Quantity = quantity
			return nil
		}
	}
	return ErrProductNotFound
}

// Remove deletes a product from the repository by its ID.
func (r *InMemoryProductRepository) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear drops every product. Ids keep counting from where they were.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
