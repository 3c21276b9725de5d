// Package staff tracks the nurse and TENS assigned to each room per shift.
// Assignments are keyed by room id, created lazily on the first write, and
// never deleted: clearing a name leaves an assignment with blank fields.
package staff

import "time"

const (
	ShiftDay   = "Día"
	ShiftNight = "Noche"
)

// Assignment is the staff of one room. Zero values are meaningful: a blank
// nurse or tens means nobody is assigned yet.
type Assignment struct {
	RoomID    string    `json:"room_id"`
	Nurse     string    `json:"nurse"`
	Tens      string    `json:"tens"`
	Shift     string    `json:"shift"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update carries a partial edit. Nil fields are left untouched, so callers
// can change the nurse without knowing the current tens or shift.
type Update struct {
	Nurse *string `json:"nurse"`
	Tens  *string `json:"tens"`
	Shift *string `json:"shift"`
}
