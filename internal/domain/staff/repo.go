package staff

import "context"

// Repository abstracts assignment persistence. Get on a room with no
// assignment yet returns ErrNotAssigned; Put creates or replaces.
type Repository interface {
	Get(ctx context.Context, roomID string) (*Assignment, error)
	Put(ctx context.Context, a *Assignment) error
	All(ctx context.Context) (map[string]*Assignment, error)
}
