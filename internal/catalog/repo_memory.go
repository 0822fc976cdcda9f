package catalog

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryRepo constructs a MemoryRepo seeded with the given products.
func NewMemoryRepo(products []Product) *MemoryRepo {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &MemoryRepo{products: cp}
}

// List returns all products.
func (r *MemoryRepo) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			return r.products[i], nil
		}
	}
	return Product{}, ErrNotFound
}

// ListByCategory returns products whose category contains the given value,
// case-insensitively.
func (r *MemoryRepo) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(category))
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Product{}
	for i := range r.products {
		if strings.Contains(strings.ToLower(r.products[i].Category), needle) {
			out = append(out, r.products[i])
		}
	}
	return out, nil
}
