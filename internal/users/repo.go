package users

import "context"

// Repo defines persistence for user accounts.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) error
	UpsertGoogle(ctx context.Context, user User) (User, error)
}
