package roster

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// repoMem is the in-memory Repository used when the server runs without
// PostgreSQL. State lives for the lifetime of the process.
type repoMem struct {
	mu       sync.RWMutex
	patients map[uuid.UUID]*Patient
	order    []uuid.UUID // insertion order, mirrors admitted_at ordering
}

// NewMemRepo returns an in-memory Repository.
func NewMemRepo() Repository {
	return &repoMem{patients: make(map[uuid.UUID]*Patient)}
}

func (r *repoMem) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	cp.UpdatedAt = time.Now().UTC()
	r.patients[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	p.UpdatedAt = cp.UpdatedAt
	return nil
}

func (r *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *repoMem) Update(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.patients[p.ID]
	if !ok {
		return ErrNotFound
	}
	cp := *p
	cp.AdmittedAt = cur.AdmittedAt
	cp.UpdatedAt = time.Now().UTC()
	r.patients[p.ID] = &cp
	p.UpdatedAt = cp.UpdatedAt
	return nil
}

func (r *repoMem) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[id]; !ok {
		return ErrNotFound
	}
	delete(r.patients, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *repoMem) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Patient, 0, len(r.patients))
	for _, id := range r.order {
		cp := *r.patients[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *repoMem) ListByRoom(_ context.Context, roomID string) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Patient
	for _, id := range r.order {
		if p := r.patients[id]; p.Room == roomID {
			cp := *p
			out = append(out, &cp)
		}
	}
	SortByBed(out)
	return out, nil
}

func (r *repoMem) CountByRoom(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range r.patients {
		counts[p.Room]++
	}
	return counts, nil
}
