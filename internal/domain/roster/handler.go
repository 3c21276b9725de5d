package roster

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pizarra/pizarra/internal/domain/ward"
	"github.com/pizarra/pizarra/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/:id/patients", h.ListRoomPatients)

	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.AdmitPatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.SavePatient)
	api.DELETE("/patients/:id", h.DischargePatient)
	api.GET("/patients/:id/transfer-options", h.TransferOptions)
	api.POST("/patients/:id/transfer", h.TransferPatient)
}

// ListRooms returns the fixed room registry with current occupancy counts.
func (h *Handler) ListRooms(c echo.Context) error {
	counts, err := h.svc.Occupancy(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	type roomView struct {
		ward.Room
		PatientCount int `json:"patient_count"`
	}
	rooms := ward.All()
	out := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomView{Room: r, PatientCount: counts[r.ID]})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListRoomPatients(c echo.Context) error {
	patients, err := h.svc.Room(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)

	patients, err := h.svc.Board(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	total := len(patients)
	start := pg.Offset
	if start > total {
		start = total
	}
	end := start + pg.Limit
	if end > total {
		end = total
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(patients[start:end], total, pg.Limit, pg.Offset))
}

func (h *Handler) AdmitPatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Admit(c.Request().Context(), &p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, &p)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) SavePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Save(c.Request().Context(), id, &p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, &p)
}

func (h *Handler) DischargePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Discharge(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) TransferOptions(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rooms, err := h.svc.TransferOptions(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) TransferPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Room      string `json:"room"`
		BedNumber string `json:"bed_number"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Transfer(c.Request().Context(), id, body.Room, body.BedNumber)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// httpError maps domain errors to HTTP statuses: validation failures are
// 422, missing patients 404, and anything else is treated as a storage
// fault the client may retry.
func httpError(err error) *echo.HTTPError {
	var conflict *BedConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	case errors.As(err, &conflict),
		errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrUnknownRoom),
		errors.Is(err, ErrSameRoom):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable, retry the operation")
	}
}
