package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newApp() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	// a nil pool is fine here: these tests never reach a handler that
	// would touch storage
	Register(e, nil)
	return e
}

func TestRutaNoEncontrada(t *testing.T) {
	e := newApp()
	req := httptest.NewRequest(http.MethodGet, "/api/noexiste", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, quería 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Ruta no encontrada" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestMetodoNoRegistrado(t *testing.T) {
	e := newApp()
	// the path exists but PATCH was never registered; the legacy API
	// answered these with the same 404 body
	req := httptest.NewRequest(http.MethodPatch, "/api/usuarios", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, quería 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Ruta no encontrada" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestHealthz(t *testing.T) {
	e := newApp()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, quería 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("cuerpo = %q", rec.Body.String())
	}
}
