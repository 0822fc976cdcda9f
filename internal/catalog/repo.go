package catalog

import "context"

// Repo defines read access to the product catalog. The catalog is seeded at
// startup and read-only afterwards.
type Repo interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
}
