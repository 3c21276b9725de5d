package backup

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pizarra/pizarra/internal/domain/roster"
	"github.com/pizarra/pizarra/internal/domain/staff"
	"github.com/pizarra/pizarra/internal/domain/ward"
)

type Handler struct {
	roster *roster.Service
	staff  *staff.Service
}

func NewHandler(rosterSvc *roster.Service, staffSvc *staff.Service) *Handler {
	return &Handler{roster: rosterSvc, staff: staffSvc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/rooms/:id/backup-sheet", h.BackupSheet)
	api.GET("/rooms/:id/backup.xlsx", h.BackupXLSX)
}

// BackupSheet renders the printable sheet for a room. Without parameters the
// document is served inline for direct printing; with ?download=1 it is sent
// as an attachment under the deterministic backup filename.
func (h *Handler) BackupSheet(c echo.Context) error {
	data, err := h.collect(c)
	if err != nil {
		return err
	}

	// Render fully before writing the response.
	var buf bytes.Buffer
	if err := Render(&buf, *data); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render backup sheet")
	}

	if c.QueryParam("download") == "1" {
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s"`, Filename(data.Room, data.GeneratedAt)))
	}
	return c.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, buf.Bytes())
}

// BackupXLSX serves the spreadsheet form of the sheet, always as a download.
func (h *Handler) BackupXLSX(c echo.Context) error {
	data, err := h.collect(c)
	if err != nil {
		return err
	}

	f, err := BuildWorkbook(*data)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build workbook")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build workbook")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, XLSXFilename(data.Room, data.GeneratedAt)))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// collect gathers the room, roster, and staff for the sheet. Reads only;
// generating a document never mutates board state.
func (h *Handler) collect(c echo.Context) (*SheetData, error) {
	room, ok := ward.Lookup(c.Param("id"))
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown room")
	}

	ctx := c.Request().Context()
	patients, err := h.roster.Room(ctx, room.ID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable, retry the operation")
	}
	assignment, err := h.staff.Get(ctx, room.ID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable, retry the operation")
	}

	return &SheetData{
		Room:        room,
		GeneratedAt: time.Now(),
		Staff:       assignment,
		Patients:    patients,
	}, nil
}
