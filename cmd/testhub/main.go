package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/testhub/client/internal/api/metrics"
	"github.com/testhub/client/internal/app"
	"github.com/testhub/client/internal/infrastructure/config"
	"github.com/testhub/client/pkg/logger"
)

const usage = `usage: testhub <command> [flags]

commands:
  register -login L -password P -confirm P -role teacher|student
  login    -login L -password P
  logout
  nav
  profile
  whoami
  doctor

configuration is read from TESTHUB_* environment variables.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	a, err := app.New(ctx, cfg, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Str("storage", cfg.Storage.Driver).Msg("failed to start")
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close storage")
		}
	}()

	err = a.Run(ctx, args)

	if cfg.MetricsTextfile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			log.Warn().Err(werr).Str("path", cfg.MetricsTextfile).Msg("failed to write metrics")
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrUsage):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	case errors.Is(err, app.ErrReported):
		log.Debug().Err(err).Str("command", args[0]).Msg("command failed")
		return 1
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
}
