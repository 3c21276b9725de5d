package roster

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts patient persistence. Two implementations exist: a
// PostgreSQL store for a shared board and an in-memory store for
// single-process use. The service treats them interchangeably.
type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	ListByRoom(ctx context.Context, roomID string) ([]*Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByRoom(ctx context.Context) (map[string]int, error)
}
