// Package backup renders a room's roster as a printable fallback sheet, the
// paper copy the ward works from when screens are down. The same renderer
// serves the on-screen print view and the downloadable file; only the
// delivery differs.
package backup

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/pizarra/pizarra/internal/domain/roster"
	"github.com/pizarra/pizarra/internal/domain/staff"
	"github.com/pizarra/pizarra/internal/domain/ward"
)

// BlankRows is how many empty rows the sheet carries for handwritten
// additions after the printed roster.
const BlankRows = 4

// placeholder stands in for an unassigned nurse or tens name, leaving a
// line to write on.
const placeholder = "___________________"

// SheetData is everything the renderer needs. It is assembled by the caller
// so rendering itself never touches storage.
type SheetData struct {
	Room        ward.Room
	GeneratedAt time.Time
	Staff       *staff.Assignment
	Patients    []*roster.Patient
}

// Filename returns the deterministic download name for a sheet generated at
// the given moment, e.g. "Respaldo_Observación_1_1724990400000.html".
func Filename(room ward.Room, generatedAt time.Time) string {
	name := strings.Join(strings.Fields(room.Name), "_")
	return fmt.Sprintf("Respaldo_%s_%d.html", name, generatedAt.UnixMilli())
}

// XLSXFilename is the spreadsheet counterpart of Filename.
func XLSXFilename(room ward.Room, generatedAt time.Time) string {
	name := strings.Join(strings.Fields(room.Name), "_")
	return fmt.Sprintf("Respaldo_%s_%d.xlsx", name, generatedAt.UnixMilli())
}

type sheetRow struct {
	Bed             string
	Name            string
	Hospitalization bool
	Treatment       string
	Pending         string
}

type sheetView struct {
	RoomName  string
	Date      string
	Time      string
	Shift     string
	Nurse     string
	Tens      string
	Rows      []sheetRow
	BlankRows []struct{}
}

// Render writes the complete printable sheet to w. Patients are listed in
// bed order followed by BlankRows empty rows; the sheet triggers the print
// dialog when opened in a browser.
func Render(w io.Writer, data SheetData) error {
	view := sheetView{
		RoomName:  data.Room.Name,
		Date:      data.GeneratedAt.Format("02-01-2006"),
		Time:      data.GeneratedAt.Format("15:04:05"),
		Shift:     strings.ToUpper(staff.ShiftDay),
		Nurse:     placeholder,
		Tens:      placeholder,
		BlankRows: make([]struct{}, BlankRows),
	}
	if data.Staff != nil {
		if data.Staff.Shift != "" {
			view.Shift = strings.ToUpper(data.Staff.Shift)
		}
		if data.Staff.Nurse != "" {
			view.Nurse = data.Staff.Nurse
		}
		if data.Staff.Tens != "" {
			view.Tens = data.Staff.Tens
		}
	}

	patients := make([]*roster.Patient, len(data.Patients))
	copy(patients, data.Patients)
	roster.SortByBed(patients)

	for _, p := range patients {
		bed := p.BedNumber
		if strings.TrimSpace(bed) == "" {
			bed = "-"
		}
		view.Rows = append(view.Rows, sheetRow{
			Bed:             bed,
			Name:            strings.ToUpper(p.Name),
			Hospitalization: p.Hospitalization,
			Treatment:       p.Treatment,
			Pending:         p.Pending,
		})
	}

	return sheetTmpl.Execute(w, view)
}

var sheetTmpl = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Hoja de Respaldo - {{.RoomName}}</title>
  <style>
    @page { size: portrait; margin: 1cm; }
    body { font-family: Arial, sans-serif; padding: 20px; }
    table { width: 100%; border-collapse: collapse; margin-top: 10px; font-size: 12px; }
    th { background-color: #f0f0f0; text-align: center; border: 1px solid black; padding: 8px; }
    td { border: 1px solid black; padding: 4px; }
    h1 { text-align: center; text-transform: uppercase; font-size: 16px; border-bottom: 2px solid black; margin-bottom: 5px; }
    .meta { display: flex; justify-content: space-between; font-size: 11px; margin-bottom: 5px; }
    .staff-box { border: 1px solid #ccc; padding: 5px; font-size: 11px; background: #f9f9f9; margin-bottom: 15px; }
    .bed { text-align: center; font-weight: bold; }
    .name { font-weight: bold; }
    .hosp { color: red; font-size: 10px; font-weight: bold; }
    .blank td { height: 40px; }
  </style>
</head>
<body>
  <h1>Registro Manual / Respaldo - {{.RoomName}}</h1>

  <div class="meta">
    <span>FECHA: {{.Date}}</span>
    <span>HORA GENERACIÓN: {{.Time}}</span>
  </div>

  <div class="staff-box">
    <strong>EQUIPO A CARGO ({{.Shift}}):</strong> &nbsp;&nbsp;
    Enfermera/o: <u>{{.Nurse}}</u> &nbsp;&nbsp;|&nbsp;&nbsp;
    TENS: <u>{{.Tens}}</u>
  </div>

  <table>
    <thead>
      <tr>
        <th style="width: 10%">N° / CAMA</th>
        <th style="width: 30%">PACIENTE</th>
        <th style="width: 30%">TRATAMIENTO</th>
        <th style="width: 30%">OBSERVACIONES - PENDIENTES</th>
      </tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>
        <td class="bed">{{.Bed}}</td>
        <td>
          <div class="name">{{.Name}}</div>
          {{- if .Hospitalization}}
          <div class="hosp">[HOSPITALIZAR]</div>
          {{- end}}
        </td>
        <td>{{.Treatment}}</td>
        <td>{{.Pending}}</td>
      </tr>
{{- end}}
{{- range .BlankRows}}
      <tr class="blank">
        <td></td>
        <td></td>
        <td></td>
        <td></td>
      </tr>
{{- end}}
    </tbody>
  </table>
  <script>window.onload = function() { window.print(); }</script>
</body>
</html>
`))
