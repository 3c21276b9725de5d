package backup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pizarra/pizarra/internal/domain/roster"
	"github.com/pizarra/pizarra/internal/domain/staff"
)

func setupHandler(t *testing.T) (*echo.Echo, *roster.Service) {
	t.Helper()
	rosterSvc := roster.NewService(roster.NewMemRepo())
	staffSvc := staff.NewService(staff.NewMemRepo())

	e := echo.New()
	NewHandler(rosterSvc, staffSvc).RegisterRoutes(e.Group("/api/v1"))
	return e, rosterSvc
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBackupSheet_Inline(t *testing.T) {
	e, rosterSvc := setupHandler(t)
	if err := rosterSvc.Admit(context.Background(),
		&roster.Patient{Name: "Ana", Room: "obs1", BedNumber: "3"}); err != nil {
		t.Fatal(err)
	}

	rec := get(e, "/api/v1/rooms/obs1/backup-sheet")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderContentDisposition) != "" {
		t.Error("inline render must not set a download disposition")
	}
	if !strings.Contains(rec.Body.String(), "ANA") {
		t.Error("expected the patient on the sheet")
	}
}

func TestBackupSheet_Download(t *testing.T) {
	e, _ := setupHandler(t)

	rec := get(e, "/api/v1/rooms/obs1/backup-sheet?download=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.HasPrefix(cd, `attachment; filename="Respaldo_Observación_1_`) {
		t.Errorf("unexpected disposition %q", cd)
	}
	if !strings.HasSuffix(cd, `.html"`) {
		t.Errorf("unexpected disposition %q", cd)
	}
}

func TestBackupSheet_UnknownRoom(t *testing.T) {
	e, _ := setupHandler(t)

	rec := get(e, "/api/v1/rooms/icu/backup-sheet")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestBackupXLSX_Download(t *testing.T) {
	e, rosterSvc := setupHandler(t)
	if err := rosterSvc.Admit(context.Background(),
		&roster.Patient{Name: "Ana", Room: "obs2", BedNumber: "1"}); err != nil {
		t.Fatal(err)
	}

	rec := get(e, "/api/v1/rooms/obs2/backup.xlsx")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(cd, "Respaldo_Observación_2_") || !strings.Contains(cd, ".xlsx") {
		t.Errorf("unexpected disposition %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected a workbook body")
	}
}

func TestBackupSheet_DoesNotMutateBoard(t *testing.T) {
	e, rosterSvc := setupHandler(t)
	if err := rosterSvc.Admit(context.Background(),
		&roster.Patient{Name: "Ana", Room: "obs1", BedNumber: "3"}); err != nil {
		t.Fatal(err)
	}

	get(e, "/api/v1/rooms/obs1/backup-sheet?download=1")

	patients, err := rosterSvc.Room(context.Background(), "obs1")
	if err != nil {
		t.Fatal(err)
	}
	if len(patients) != 1 || patients[0].Name != "Ana" || patients[0].BedNumber != "3" {
		t.Error("generating a sheet must not change board state")
	}
}
