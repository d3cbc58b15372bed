package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tabletalk/tabletalk/internal/config"
)

func testConfig() *config.Config {
	cfg, _ := config.Load()
	cfg.BackendURL = "http://127.0.0.1:1" // nothing listens here
	return cfg
}

func TestIndexServed(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `accept=".csv,.xls,.xlsx"`) {
		t.Error("upload widget file filter missing from page")
	}
	if !strings.Contains(body, "/api/v1") {
		t.Error("API prefix not rendered into the page")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("middleware chain not applied to the page route")
	}
}

func TestHealthDegradedWithoutBackend(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when the backend is down", rr.Code)
	}
}

func TestAskRouteRegistered(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", strings.NewReader(`{"question":""}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rr, req)

	// Blank question is rejected by the handler, not the router.
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
