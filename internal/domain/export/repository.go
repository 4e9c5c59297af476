package export

import "context"

// Repository stores export records for the lifetime of the session.
type Repository interface {
	Create(ctx context.Context, export *Export) error
	Get(ctx context.Context, id string) (*Export, error)
	Update(ctx context.Context, export *Export) error
}
