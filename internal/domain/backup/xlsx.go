package backup

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pizarra/pizarra/internal/domain/roster"
)

// BuildWorkbook renders the sheet data as a spreadsheet: same columns as the
// printed sheet, same bed ordering, same trailing blank rows for handwritten
// additions.
func BuildWorkbook(data SheetData) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Respaldo"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F0F0"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	shift := "DÍA"
	nurse, tens := placeholder, placeholder
	if data.Staff != nil {
		if data.Staff.Shift != "" {
			shift = strings.ToUpper(data.Staff.Shift)
		}
		if data.Staff.Nurse != "" {
			nurse = data.Staff.Nurse
		}
		if data.Staff.Tens != "" {
			tens = data.Staff.Tens
		}
	}

	if err := f.SetCellValue(sheet, "A1", "REGISTRO MANUAL / RESPALDO - "+strings.ToUpper(data.Room.Name)); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A2", "FECHA: "+data.GeneratedAt.Format("02-01-2006")); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "C2", "HORA: "+data.GeneratedAt.Format("15:04:05")); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A3",
		fmt.Sprintf("EQUIPO A CARGO (%s): Enfermera/o: %s | TENS: %s", shift, nurse, tens)); err != nil {
		return nil, err
	}

	headers := []string{"N° / CAMA", "PACIENTE", "TRATAMIENTO", "OBSERVACIONES - PENDIENTES"}
	const headerRow = 5
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	patients := make([]*roster.Patient, len(data.Patients))
	copy(patients, data.Patients)
	roster.SortByBed(patients)

	row := headerRow + 1
	for _, p := range patients {
		bed := p.BedNumber
		if strings.TrimSpace(bed) == "" {
			bed = "-"
		}
		name := strings.ToUpper(p.Name)
		if p.Hospitalization {
			name += " [HOSPITALIZAR]"
		}
		values := []interface{}{bed, name, p.Treatment, p.Pending}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	// Blank rows still get borders so they print as writable boxes.
	blankStyle, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}
	for i := 0; i < BlankRows; i++ {
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		end, err := excelize.CoordinatesToCellName(len(headers), row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, start, end, blankStyle); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "D", 35); err != nil {
		return nil, err
	}

	return f, nil
}
