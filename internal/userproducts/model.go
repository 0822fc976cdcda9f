package userproducts

import (
	"errors"
	"time"

	"beauty-backend/internal/catalog"
)

// ErrNotFound is returned when a saved product does not exist for the user.
var ErrNotFound = errors.New("saved product not found")

// ErrUnknownProduct is returned when the referenced catalog product does not
// exist.
var ErrUnknownProduct = errors.New("unknown product")

// UserProduct is a catalog product saved to a user's shelf.
type UserProduct struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	ProductID int64           `json:"productId"`
	Favorited bool            `json:"favorited"`
	CreatedAt time.Time       `json:"createdAt"`
	Product   catalog.Product `json:"product"`
}
