// Package client talks to the testhub backend on behalf of the current
// session: registration, login and the assigned-tests listing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/testhub/client/internal/api/metrics"
	"github.com/testhub/client/internal/api/middleware"
	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/core/ports"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20

	opRegister      = "register"
	opLogin         = "login"
	opAssignedTests = "assigned_tests"
)

var errBodyTooLarge = fmt.Errorf("response body exceeds %d bytes", maxBodyBytes)

// Fallbacks are the messages used when the backend rejects a request without
// saying why.
type Fallbacks struct {
	Register string
	Login    string
}

// DefaultFallbacks are used when Options.Fallbacks is left empty.
var DefaultFallbacks = Fallbacks{
	Register: "registration failed",
	Login:    "invalid login or password",
}

// Options configures a Client.
type Options struct {
	// BaseURL is prepended to every API path. Empty means same origin, which
	// for a standalone client is rarely what you want.
	BaseURL string
	// Timeout bounds a single exchange. Defaults to 10s.
	Timeout time.Duration
	// Transport is the innermost RoundTripper. Defaults to http.DefaultTransport.
	Transport http.RoundTripper
	Fallbacks Fallbacks
}

// Client implements ports.AuthClient and ports.AssignmentSource.
type Client struct {
	baseURL   string
	http      *http.Client
	sessions  ports.SessionStore
	nav       ports.Navigator
	forms     *formValidator
	fallbacks Fallbacks
	log       zerolog.Logger
}

var (
	_ ports.AuthClient       = (*Client)(nil)
	_ ports.AssignmentSource = (*Client)(nil)
)

// New builds a Client. Outbound requests carry a request id and, when a
// session exists, its bearer credential.
func New(opts Options, sessions ports.SessionStore, nav ports.Navigator, log zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	fallbacks := opts.Fallbacks
	if fallbacks.Register == "" {
		fallbacks.Register = DefaultFallbacks.Register
	}
	if fallbacks.Login == "" {
		fallbacks.Login = DefaultFallbacks.Login
	}

	transport := middleware.RequestID(middleware.BearerAuth(sessions, opts.Transport))

	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		http:      &http.Client{Timeout: timeout, Transport: transport},
		sessions:  sessions,
		nav:       nav,
		forms:     newFormValidator(),
		fallbacks: fallbacks,
		log:       log,
	}
}

// exchange sends one request and decodes the JSON answer into out. The
// envelope's error field, when present, becomes the APIError message.
func (c *Client) exchange(ctx context.Context, op, method, path string, body, out any, fallback string) error {
	start := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return &domain.NetworkError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(raw) > maxBodyBytes {
		return &domain.NetworkError{Op: op, Err: errBodyTooLarge}
	}

	// The body is decoded before the status is looked at; an unreadable body
	// means the exchange did not complete, whatever the status.
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &domain.NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := envelope.Error
		if msg == "" {
			msg = fallback
		}
		return &domain.APIError{Op: op, Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &domain.NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// record counts the outcome of op and logs failures.
func (c *Client) record(op string, err error) {
	outcome := outcomeOf(err)
	metrics.RequestsTotal.WithLabelValues(op, outcome).Inc()
	if err == nil {
		return
	}

	evt := c.log.Warn()
	if outcome == metrics.OutcomeValidation {
		evt = c.log.Debug()
	}
	evt.Err(err).Str("operation", op).Str("outcome", outcome).Msg("backend exchange failed")
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, domain.ErrAPI):
		return metrics.OutcomeAPI
	case errors.Is(err, domain.ErrStorage):
		return metrics.OutcomeStorage
	default:
		return metrics.OutcomeNetwork
	}
}
