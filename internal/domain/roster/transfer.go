package roster

import (
	"github.com/pizarra/pizarra/internal/domain/ward"
)

// TransferState tracks where a transfer stands. A transfer is either not
// happening, in progress with a chosen destination and bed, or committed.
type TransferState int

const (
	TransferIdle TransferState = iota
	TransferOpen
	TransferCommitted
)

func (s TransferState) String() string {
	switch s {
	case TransferIdle:
		return "idle"
	case TransferOpen:
		return "open"
	case TransferCommitted:
		return "committed"
	}
	return "unknown"
}

// Transfer is the workflow of moving one patient to another room. It holds
// the chosen destination and bed plus the last validation failure, so a
// rejected commit leaves the attempt open for correction instead of
// discarding it.
type Transfer struct {
	State   TransferState
	Patient *Patient
	From    string
	To      string
	Bed     string
	Err     error

	options []ward.Room
}

// BeginTransfer opens a transfer for p. The destination defaults to the
// first room that is not the patient's current one.
func BeginTransfer(p *Patient) *Transfer {
	t := &Transfer{
		State:   TransferOpen,
		Patient: p,
		From:    p.Room,
	}
	for _, r := range ward.All() {
		if r.ID == p.Room {
			continue
		}
		t.options = append(t.options, r)
	}
	if len(t.options) > 0 {
		t.To = t.options[0].ID
	}
	return t
}

// Options returns the candidate destination rooms. The patient's current
// room is never offered.
func (t *Transfer) Options() []ward.Room {
	return t.options
}

// SetDestination picks the destination room and clears any prior validation
// failure, so a corrected choice gets a fresh verdict.
func (t *Transfer) SetDestination(roomID string) error {
	if !ward.IsValid(roomID) {
		return ErrUnknownRoom
	}
	if roomID == t.From {
		return ErrSameRoom
	}
	t.To = roomID
	t.Err = nil
	return nil
}

// SetBed picks the bed in the destination room and clears any prior
// validation failure. Blank means the patient arrives without a bed.
func (t *Transfer) SetBed(bed string) {
	t.Bed = bed
	t.Err = nil
}

// Commit validates the chosen bed against the destination room's current
// occupants and, if free, moves the patient: room and bed are replaced
// wholesale, so the old bed is released as a side effect. On conflict the
// transfer stays open with Err set and the patient untouched.
func (t *Transfer) Commit(destination []*Patient) error {
	if t.State != TransferOpen {
		return nil
	}
	if t.To == "" || t.To == t.From {
		t.Err = ErrSameRoom
		return t.Err
	}

	if occ := CheckConflict(destination, t.To, t.Bed, t.Patient.ID); occ != nil {
		t.Err = &BedConflictError{
			Bed:      t.Bed,
			RoomID:   t.To,
			RoomName: ward.Name(t.To),
			Occupant: occ.Name,
		}
		return t.Err
	}

	t.Patient.Room = t.To
	t.Patient.BedNumber = t.Bed
	t.State = TransferCommitted
	t.Err = nil
	return nil
}
