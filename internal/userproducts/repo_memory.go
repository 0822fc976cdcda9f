package userproducts

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"beauty-backend/internal/catalog"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests. It
// resolves product details through a catalog repo.
type MemoryRepo struct {
	Catalog catalog.Repo

	mu    sync.RWMutex
	items map[string][]UserProduct
}

// NewMemoryRepo constructs an empty MemoryRepo over the given catalog.
func NewMemoryRepo(catalogRepo catalog.Repo) *MemoryRepo {
	return &MemoryRepo{
		Catalog: catalogRepo,
		items:   make(map[string][]UserProduct),
	}
}

func (r *MemoryRepo) Add(ctx context.Context, userID string, productID int64) (UserProduct, error) {
	product, err := r.Catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return UserProduct{}, ErrUnknownProduct
		}
		return UserProduct{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items[userID] {
		if item.ProductID == productID {
			item.Product = product
			return item, nil
		}
	}

	item := UserProduct{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
		Product:   product,
	}
	r.items[userID] = append(r.items[userID], item)
	return item, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]UserProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	saved := append([]UserProduct(nil), r.items[userID]...)
	r.mu.RUnlock()

	for i := range saved {
		product, err := r.Catalog.GetByID(ctx, saved[i].ProductID)
		if err != nil && !errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		saved[i].Product = product
	}
	sort.SliceStable(saved, func(i, j int) bool {
		if !saved[i].CreatedAt.Equal(saved[j].CreatedAt) {
			return saved[i].CreatedAt.After(saved[j].CreatedAt)
		}
		return saved[i].ID > saved[j].ID
	})
	return saved, nil
}

func (r *MemoryRepo) ToggleFavorite(ctx context.Context, userID string, productID int64) (UserProduct, error) {
	product, err := r.Catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return UserProduct{}, ErrUnknownProduct
		}
		return UserProduct{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items[userID] {
		if item.ProductID == productID {
			item.Favorited = !item.Favorited
			item.Product = product
			r.items[userID][i] = item
			return item, nil
		}
	}

	item := UserProduct{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Favorited: true,
		CreatedAt: time.Now().UTC(),
		Product:   product,
	}
	r.items[userID] = append(r.items[userID], item)
	return item, nil
}

func (r *MemoryRepo) Remove(ctx context.Context, userID string, productID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := r.items[userID]
	for i, item := range saved {
		if item.ProductID == productID {
			r.items[userID] = append(saved[:i], saved[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
