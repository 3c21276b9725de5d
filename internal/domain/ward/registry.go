// Package ward defines the fixed set of rooms on the whiteboard. The set is
// compiled in rather than stored: the physical ward does not change at
// runtime, and every other package validates room ids against this registry.
package ward

// Room describes one physical room on the board.
type Room struct {
	// ID is the stable identifier used in URLs, storage, and topics.
	ID string `json:"id"`
	// Name is the human-readable label shown on screens and printed sheets.
	Name string `json:"name"`
	// TracksBeds reports whether patients in this room occupy numbered beds.
	// Rooms without bed tracking never participate in bed-conflict checks.
	TracksBeds bool `json:"tracks_beds"`
}

// ManualBackupID identifies the printable backup view. It is a screen, not a
// physical room, so it is deliberately absent from the registry.
const ManualBackupID = "manual_backup"

// rooms is ordered as the board displays them.
var rooms = []Room{
	{ID: "obs1", Name: "Observación 1", TracksBeds: true},
	{ID: "obs2", Name: "Observación 2", TracksBeds: true},
	{ID: "obs34", Name: "Observación 3-4", TracksBeds: true},
	{ID: "tratamiento", Name: "Tratamiento", TracksBeds: false},
	{ID: "reanimador", Name: "Reanimador", TracksBeds: true},
}

var byID = func() map[string]Room {
	m := make(map[string]Room, len(rooms))
	for _, r := range rooms {
		m[r.ID] = r
	}
	return m
}()

// All returns every room in display order. The returned slice is a copy.
func All() []Room {
	out := make([]Room, len(rooms))
	copy(out, rooms)
	return out
}

// Lookup returns the room with the given id.
func Lookup(id string) (Room, bool) {
	r, ok := byID[id]
	return r, ok
}

// IsValid reports whether id names a room in the registry.
func IsValid(id string) bool {
	_, ok := byID[id]
	return ok
}

// Name returns the display name for id, or the id itself when unknown.
func Name(id string) string {
	if r, ok := byID[id]; ok {
		return r.Name
	}
	return id
}
