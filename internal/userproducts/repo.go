package userproducts

import "context"

// Repo defines persistence for a user's saved products.
type Repo interface {
	// Add saves a product to the user's shelf. Adding a product that is
	// already saved returns the existing row.
	Add(ctx context.Context, userID string, productID int64) (UserProduct, error)
	// ListByUser returns the user's saved products with catalog details,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]UserProduct, error)
	// ToggleFavorite flips the favorite flag. A product that is not saved
	// yet gets saved already favorited.
	ToggleFavorite(ctx context.Context, userID string, productID int64) (UserProduct, error)
	// Remove deletes a saved product from the user's shelf.
	Remove(ctx context.Context, userID string, productID int64) error
}
