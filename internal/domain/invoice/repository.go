package invoice

import "context"

// Repository is the session-scoped draft store. Implementations must hand out
// and accept deep copies so stored snapshots cannot be mutated in place.
type Repository interface {
	Create(ctx context.Context, draft *Draft) error
	Get(ctx context.Context, id string) (*Draft, error)
	Update(ctx context.Context, draft *Draft) error
}
