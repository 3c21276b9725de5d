package staff

import "errors"

var (
	// ErrNotAssigned means the room has no assignment record yet.
	ErrNotAssigned = errors.New("no staff assigned")
	// ErrUnknownRoom rejects room ids absent from the ward registry.
	ErrUnknownRoom = errors.New("unknown room")
	// ErrInvalidShift rejects shifts other than day and night.
	ErrInvalidShift = errors.New("shift must be Día or Noche")
)
