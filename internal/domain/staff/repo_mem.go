package staff

import (
	"context"
	"sync"
	"time"
)

type repoMem struct {
	mu          sync.RWMutex
	assignments map[string]*Assignment
}

// NewMemRepo returns an in-memory Repository.
func NewMemRepo() Repository {
	return &repoMem{assignments: make(map[string]*Assignment)}
}

func (r *repoMem) Get(_ context.Context, roomID string) (*Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.assignments[roomID]
	if !ok {
		return nil, ErrNotAssigned
	}
	cp := *a
	return &cp, nil
}

func (r *repoMem) Put(_ context.Context, a *Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *a
	cp.UpdatedAt = time.Now().UTC()
	r.assignments[cp.RoomID] = &cp
	a.UpdatedAt = cp.UpdatedAt
	return nil
}

func (r *repoMem) All(_ context.Context) (map[string]*Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Assignment, len(r.assignments))
	for id, a := range r.assignments {
		cp := *a
		out[id] = &cp
	}
	return out, nil
}
