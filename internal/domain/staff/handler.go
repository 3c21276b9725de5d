package staff

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/staff", h.ListAssignments)
	api.GET("/rooms/:id/staff", h.GetAssignment)
	api.PUT("/rooms/:id/staff", h.UpdateAssignment)
}

func (h *Handler) ListAssignments(c echo.Context) error {
	all, err := h.svc.All(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, all)
}

func (h *Handler) GetAssignment(c echo.Context) error {
	a, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// UpdateAssignment merges a partial body into the room's assignment. Fields
// absent from the body are left as they are.
func (h *Handler) UpdateAssignment(c echo.Context) error {
	var upd Update
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Apply(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrUnknownRoom), errors.Is(err, ErrInvalidShift):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable, retry the operation")
	}
}
