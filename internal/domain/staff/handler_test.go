package staff

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupHandler() *echo.Echo {
	e := echo.New()
	NewHandler(NewService(NewMemRepo())).RegisterRoutes(e.Group("/api/v1"))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUpdateAssignment_PartialBodyMerges(t *testing.T) {
	e := setupHandler()

	rec := doJSON(e, http.MethodPut, "/api/v1/rooms/obs1/staff", `{"nurse":"María"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPut, "/api/v1/rooms/obs1/staff", `{"tens":"Pedro"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var a Assignment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatal(err)
	}
	if a.Nurse != "María" || a.Tens != "Pedro" {
		t.Errorf("partial update should merge, got %+v", a)
	}
}

func TestUpdateAssignment_InvalidShiftIs422(t *testing.T) {
	e := setupHandler()

	rec := doJSON(e, http.MethodPut, "/api/v1/rooms/obs1/staff", `{"shift":"Tarde"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestGetAssignment_UnknownRoomIs422(t *testing.T) {
	e := setupHandler()

	rec := doJSON(e, http.MethodGet, "/api/v1/rooms/icu/staff", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestGetAssignment_DefaultsForFreshRoom(t *testing.T) {
	e := setupHandler()

	rec := doJSON(e, http.MethodGet, "/api/v1/rooms/tratamiento/staff", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var a Assignment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatal(err)
	}
	if a.Shift != ShiftDay {
		t.Errorf("expected default day shift, got %q", a.Shift)
	}
}

func TestListAssignments(t *testing.T) {
	e := setupHandler()

	rec := doJSON(e, http.MethodGet, "/api/v1/staff", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var all map[string]*Assignment
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 rooms, got %d", len(all))
	}
}
