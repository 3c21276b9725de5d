package roster

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pizarra/pizarra/internal/domain/ward"
)

// Notifier publishes a room's wholesale state to live subscribers. A nil
// Notifier is valid and disables pushes.
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

// Admit validates and creates a new patient. The draft is only written to
// the store if the name is present, the room exists, and the requested bed
// is free; on failure the draft is left as the caller passed it.
func (s *Service) Admit(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if !ward.IsValid(p.Room) {
		return ErrUnknownRoom
	}

	snapshot, err := s.repo.ListByRoom(ctx, p.Room)
	if err != nil {
		return err
	}
	if occ := CheckConflict(snapshot, p.Room, p.BedNumber, uuid.Nil); occ != nil {
		return &BedConflictError{
			Bed:      p.BedNumber,
			RoomID:   p.Room,
			RoomName: ward.Name(p.Room),
			Occupant: occ.Name,
		}
	}

	if p.AdmittedAt.IsZero() {
		p.AdmittedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	s.publish(ctx, p.Room)
	return nil
}

// Save edits a patient in place. The bed check excludes the patient
// themselves so keeping the same bed is always allowed. AdmittedAt is
// preserved from the stored record.
func (s *Service) Save(ctx context.Context, id uuid.UUID, p *Patient) error {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.Room == "" {
		p.Room = cur.Room
	}
	if !ward.IsValid(p.Room) {
		return ErrUnknownRoom
	}

	snapshot, err := s.repo.ListByRoom(ctx, p.Room)
	if err != nil {
		return err
	}
	if occ := CheckConflict(snapshot, p.Room, p.BedNumber, id); occ != nil {
		return &BedConflictError{
			Bed:      p.BedNumber,
			RoomID:   p.Room,
			RoomName: ward.Name(p.Room),
			Occupant: occ.Name,
		}
	}

	p.ID = id
	p.AdmittedAt = cur.AdmittedAt
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	if cur.Room != p.Room {
		s.publish(ctx, cur.Room)
	}
	s.publish(ctx, p.Room)
	return nil
}

// Discharge removes a patient from the board permanently, freeing their bed.
func (s *Service) Discharge(ctx context.Context, id uuid.UUID) error {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, cur.Room)
	return nil
}

// Get returns a single patient.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Board returns every patient on the whiteboard.
func (s *Service) Board(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// Room returns the patients of one room, bed-sorted.
func (s *Service) Room(ctx context.Context, roomID string) ([]*Patient, error) {
	if !ward.IsValid(roomID) {
		return nil, ErrUnknownRoom
	}
	return s.repo.ListByRoom(ctx, roomID)
}

// Occupancy returns the patient count per room id.
func (s *Service) Occupancy(ctx context.Context) (map[string]int, error) {
	return s.repo.CountByRoom(ctx)
}

// TransferOptions returns the rooms a patient can be moved to. The current
// room is excluded.
func (s *Service) TransferOptions(ctx context.Context, id uuid.UUID) ([]ward.Room, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return BeginTransfer(p).Options(), nil
}

// Transfer moves a patient to another room with a new bed. The destination
// bed is validated against that room's occupants; on conflict nothing is
// written. The patient's old bed is released by the move itself.
func (s *Service) Transfer(ctx context.Context, id uuid.UUID, toRoom, newBed string) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t := BeginTransfer(p)
	if err := t.SetDestination(toRoom); err != nil {
		return nil, err
	}
	t.SetBed(newBed)

	destination, err := s.repo.ListByRoom(ctx, toRoom)
	if err != nil {
		return nil, err
	}
	if err := t.Commit(destination); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, t.From)
	s.publish(ctx, t.To)
	return p, nil
}

// publish pushes the room's current state to live subscribers. Best-effort:
// a failed read simply skips the push, the next mutation will catch up.
func (s *Service) publish(ctx context.Context, roomID string) {
	if s.notifier == nil {
		return
	}
	patients, err := s.repo.ListByRoom(ctx, roomID)
	if err != nil {
		return
	}
	s.notifier.PublishSnapshot(roomID, RoomSnapshot{
		RoomID:   roomID,
		RoomName: ward.Name(roomID),
		Patients: patients,
	})
}
