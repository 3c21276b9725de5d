package staff

import (
	"context"

	"github.com/pizarra/pizarra/internal/domain/ward"
)

// Notifier publishes a room's staff to live subscribers. Nil disables pushes.
type Notifier interface {
	PublishSnapshot(roomID string, payload interface{})
}

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetNotifier attaches an optional live-update publisher to the service.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Get returns the room's assignment. A room that was never written gets the
// zero assignment with the default day shift rather than an error, so every
// room always has a presentable staff box.
func (s *Service) Get(ctx context.Context, roomID string) (*Assignment, error) {
	if !ward.IsValid(roomID) {
		return nil, ErrUnknownRoom
	}
	a, err := s.repo.Get(ctx, roomID)
	if err == ErrNotAssigned {
		return &Assignment{RoomID: roomID, Shift: ShiftDay}, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Apply merges upd into the room's assignment field by field: nil fields
// keep their current value. The assignment is created on first write.
func (s *Service) Apply(ctx context.Context, roomID string, upd Update) (*Assignment, error) {
	if upd.Shift != nil && *upd.Shift != ShiftDay && *upd.Shift != ShiftNight {
		return nil, ErrInvalidShift
	}

	a, err := s.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if upd.Nurse != nil {
		a.Nurse = *upd.Nurse
	}
	if upd.Tens != nil {
		a.Tens = *upd.Tens
	}
	if upd.Shift != nil {
		a.Shift = *upd.Shift
	}

	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.PublishSnapshot(roomID, a)
	}
	return a, nil
}

// All returns the assignment of every room, filling in the default day
// shift for rooms never written.
func (s *Service) All(ctx context.Context) (map[string]*Assignment, error) {
	stored, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Assignment)
	for _, r := range ward.All() {
		if a, ok := stored[r.ID]; ok {
			out[r.ID] = a
			continue
		}
		out[r.ID] = &Assignment{RoomID: r.ID, Shift: ShiftDay}
	}
	return out, nil
}
