package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sthandier/antiguedades-api/internal/config"
)

func invoke(t *testing.T, mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/productos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/productos")

	llamado := false
	h := mw(func(c echo.Context) error {
		llamado = true
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware devolvió error: %v", err)
	}
	return rec, llamado
}

func TestTokenBucketDeshabilitado(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: false}
	rec, llamado := invoke(t, NewTokenBucket(cfg, nil))
	if !llamado {
		t.Fatal("el handler no fue llamado con el limitador deshabilitado")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("código = %d, quería 200", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "" {
		t.Errorf("no debería fijar cabeceras de rate limit, obtuve %q", got)
	}
}

func TestTokenBucketSinRedis(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       10,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
	}
	_, llamado := invoke(t, NewTokenBucket(cfg, nil))
	if !llamado {
		t.Fatal("sin cliente redis el limitador debe ser passthrough")
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/productos/7", nil)
	req.Header.Set("X-Real-IP", "10.0.0.9")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/productos/:id")

	casos := []struct {
		estrategia string
		quiere     string
	}{
		{"ip", "rl:ip:10.0.0.9"},
		{"route", "rl:route:GET /api/productos/:id"},
		{"ip_route", "rl:ip:10.0.0.9:route:GET /api/productos/:id"},
		{"desconocida", "rl:ip:10.0.0.9:route:GET /api/productos/:id"},
	}
	for _, tc := range casos {
		cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: tc.estrategia}
		if got := buildRateKey(cfg, c); got != tc.quiere {
			t.Errorf("estrategia %q: clave = %q, quería %q", tc.estrategia, got, tc.quiere)
		}
	}
}
