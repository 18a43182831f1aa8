// Package health checks that the client's dependencies are usable.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/testhub/client/internal/core/ports"
)

const checkTimeout = 3 * time.Second

const (
	StatusOK        = "ok"
	StatusUnhealthy = "unhealthy"
	StatusDegraded  = "degraded"
)

type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Report struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// Healthy reports whether every dependency answered.
func (r Report) Healthy() bool { return r.Status == StatusOK }

// Checker probes local storage and the backend API.
type Checker struct {
	storage ports.Storage
	apiBase string
	client  *http.Client
}

func NewChecker(storage ports.Storage, apiBase string, client *http.Client) *Checker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Checker{storage: storage, apiBase: apiBase, client: client}
}

// Readiness pings storage and the backend. Any HTTP answer from the backend
// counts as reachable; only transport failures mark it unhealthy.
func (c *Checker) Readiness(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	deps := make(map[string]DependencyStatus)
	healthy := true

	// --- local storage ---
	if err := c.storage.Ping(ctx); err != nil {
		deps["storage"] = DependencyStatus{Status: StatusUnhealthy, Error: err.Error()}
		healthy = false
	} else {
		deps["storage"] = DependencyStatus{Status: StatusOK}
	}

	// --- backend API ---
	if err := c.pingBackend(ctx); err != nil {
		deps["backend"] = DependencyStatus{Status: StatusUnhealthy, Error: err.Error()}
		healthy = false
	} else {
		deps["backend"] = DependencyStatus{Status: StatusOK}
	}

	status := StatusOK
	if !healthy {
		status = StatusDegraded
	}
	return Report{Status: status, Dependencies: deps}
}

func (c *Checker) pingBackend(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
