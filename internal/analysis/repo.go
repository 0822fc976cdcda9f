package analysis

import "context"

// Repo defines persistence for analyses. Reads are always scoped to the
// owning user.
type Repo interface {
	Create(ctx context.Context, a Analysis) error
	GetByID(ctx context.Context, id, userID string) (Analysis, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error)
}
