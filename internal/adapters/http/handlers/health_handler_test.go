package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/chronod/internal/adapters/http/handlers"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(&stubHealthRegistry{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := &stubHealthRegistry{results: map[string]error{
		"ics-feeds":      nil,
		"feed-refresher": nil,
	}}
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want %q", resp["status"], "ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["ics-feeds"] != "ok" {
		t.Errorf("checks[ics-feeds] = %q, want %q", checks["ics-feeds"], "ok")
	}
}

func TestReadiness_OneUnhealthy(t *testing.T) {
	t.Parallel()

	registry := &stubHealthRegistry{results: map[string]error{
		"ics-feeds":      nil,
		"feed-refresher": errors.New("last refresh failed"),
	}}
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %q, want %q", resp["status"], "not_ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["feed-refresher"] != "last refresh failed" {
		t.Errorf("checks[feed-refresher] = %q, want failure message", checks["feed-refresher"])
	}
}

func TestReadiness_NoChecksRegistered(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(&stubHealthRegistry{results: map[string]error{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}
