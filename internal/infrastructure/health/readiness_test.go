package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/testhub/client/internal/infrastructure/db/memory"
)

type failingStorage struct{ *memory.Storage }

func (failingStorage) Ping(context.Context) error { return errors.New("database is locked") }

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestReadiness_OK(t *testing.T) {
	srv := newBackend(t)

	r := NewChecker(memory.New(), srv.URL, srv.Client()).Readiness(context.Background())

	if !r.Healthy() {
		t.Fatalf("expected healthy report, got %+v", r)
	}
	if r.Dependencies["storage"].Status != StatusOK || r.Dependencies["backend"].Status != StatusOK {
		t.Fatalf("unexpected dependencies: %+v", r.Dependencies)
	}
}

func TestReadiness_BackendDown(t *testing.T) {
	srv := newBackend(t)
	url := srv.URL
	srv.Close()

	r := NewChecker(memory.New(), url, nil).Readiness(context.Background())

	if r.Healthy() || r.Status != StatusDegraded {
		t.Fatalf("expected degraded report, got %+v", r)
	}
	if r.Dependencies["backend"].Status != StatusUnhealthy || r.Dependencies["backend"].Error == "" {
		t.Fatalf("expected backend failure, got %+v", r.Dependencies["backend"])
	}
	if r.Dependencies["storage"].Status != StatusOK {
		t.Fatalf("storage should still be ok, got %+v", r.Dependencies["storage"])
	}
}

func TestReadiness_StorageDown(t *testing.T) {
	srv := newBackend(t)

	r := NewChecker(failingStorage{memory.New()}, srv.URL, srv.Client()).Readiness(context.Background())

	if r.Healthy() {
		t.Fatalf("expected degraded report, got %+v", r)
	}
	if got := r.Dependencies["storage"]; got.Status != StatusUnhealthy || got.Error != "database is locked" {
		t.Fatalf("unexpected storage status: %+v", got)
	}
}
