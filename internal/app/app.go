// Package app wires the client together and runs one command per invocation,
// the terminal equivalent of a page load.
package app

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/testhub/client/internal/api/client"
	"github.com/testhub/client/internal/core/ports"
	"github.com/testhub/client/internal/core/service"
	"github.com/testhub/client/internal/infrastructure/config"
	"github.com/testhub/client/internal/infrastructure/db"
	"github.com/testhub/client/internal/infrastructure/health"
	"github.com/testhub/client/internal/infrastructure/navigation"
	"github.com/testhub/client/internal/ui/locale"
	"github.com/testhub/client/internal/ui/profile"
)

type App struct {
	cfg    *config.Config
	labels locale.Labels
	out    io.Writer
	log    zerolog.Logger

	storage   ports.Storage
	sessions  ports.SessionStore
	navigator *navigation.Recorder
	client    *client.Client
	panel     *profile.Panel
	health    *health.Checker
}

// New opens the configured storage and builds every component on top of it.
func New(ctx context.Context, cfg *config.Config, out io.Writer, log zerolog.Logger) (*App, error) {
	storage, err := db.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	a, err := NewWithStorage(cfg, storage, out, log)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}
	return a, nil
}

// NewWithStorage builds the app over an already opened storage backend.
func NewWithStorage(cfg *config.Config, storage ports.Storage, out io.Writer, log zerolog.Logger) (*App, error) {
	labels, err := locale.For(cfg.Locale)
	if err != nil {
		return nil, err
	}

	// --- Dependencies ---
	sessions := service.NewSessionStore(storage, log)
	navigator := navigation.NewRecorder(out, log)
	apiClient := client.New(client.Options{
		BaseURL: cfg.APIBase,
		Timeout: cfg.RequestTimeout,
		Fallbacks: client.Fallbacks{
			Register: labels.RegistrationFailed,
			Login:    labels.InvalidLogin,
		},
	}, sessions, navigator, log)
	panel := profile.NewPanel(apiClient, labels, log)
	checker := health.NewChecker(storage, cfg.APIBase, &http.Client{Timeout: cfg.RequestTimeout})

	return &App{
		cfg:       cfg,
		labels:    labels,
		out:       out,
		log:       log,
		storage:   storage,
		sessions:  sessions,
		navigator: navigator,
		client:    apiClient,
		panel:     panel,
		health:    checker,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	a.panel.Close()
	return a.storage.Close()
}
