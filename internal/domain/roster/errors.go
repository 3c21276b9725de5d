package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired rejects admissions and edits with a blank name.
	ErrNameRequired = errors.New("name is required")
	// ErrUnknownRoom rejects room ids absent from the ward registry.
	ErrUnknownRoom = errors.New("unknown room")
	// ErrSameRoom rejects transfers whose destination is the current room.
	ErrSameRoom = errors.New("destination matches the current room")
	// ErrNotFound means the patient id does not exist on the board.
	ErrNotFound = errors.New("patient not found")
)

// BedConflictError reports that the requested bed is already occupied. The
// draft being validated is never mutated when this is returned.
type BedConflictError struct {
	Bed      string
	RoomID   string
	RoomName string
	Occupant string
}

func (e *BedConflictError) Error() string {
	return fmt.Sprintf("bed %s in %s is already occupied by %s", e.Bed, e.RoomName, e.Occupant)
}
