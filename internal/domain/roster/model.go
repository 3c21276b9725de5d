// Package roster manages the patients on the whiteboard: admissions, edits,
// discharges, and room-to-room transfers, plus the bed availability rules
// that keep two patients out of the same bed.
package roster

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Patient is one entry on the board. BedNumber is free text: "3", "3A",
// "pasillo" are all valid, and rooms that do not track beds leave it blank.
type Patient struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Room            string    `json:"room"`
	BedNumber       string    `json:"bed_number"`
	Treatment       string    `json:"treatment"`
	Pending         string    `json:"pending"`
	Hospitalization bool      `json:"hospitalization"`
	AdmittedAt      time.Time `json:"admitted_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MarshalJSON adds admitted_display, the wall-clock admission time the board
// shows next to the patient's name.
func (p *Patient) MarshalJSON() ([]byte, error) {
	type alias Patient
	return json.Marshal(struct {
		*alias
		AdmittedDisplay string `json:"admitted_display"`
	}{
		alias:           (*alias)(p),
		AdmittedDisplay: p.AdmittedAt.Format("15:04"),
	})
}

// RoomSnapshot is the wholesale state of one room, pushed to live
// subscribers after every committed mutation.
type RoomSnapshot struct {
	RoomID   string     `json:"room_id"`
	RoomName string     `json:"room_name"`
	Patients []*Patient `json:"patients"`
}
