// Package db selects and opens the configured local storage backend.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/testhub/client/internal/core/ports"
	"github.com/testhub/client/internal/infrastructure/config"
	"github.com/testhub/client/internal/infrastructure/db/memory"
	"github.com/testhub/client/internal/infrastructure/db/mongo"
	"github.com/testhub/client/internal/infrastructure/db/postgres"
	"github.com/testhub/client/internal/infrastructure/db/redis"
	"github.com/testhub/client/internal/infrastructure/db/sqlite"
)

const connectTimeout = 5 * time.Second

// Open returns the storage backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (ports.Storage, error) {
	var (
		s   ports.Storage
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err = openSQLite(ctx, cfg)
	case config.DriverRedis:
		s, err = openRedis(ctx, cfg)
	case config.DriverMongo:
		s, err = openMongo(ctx, cfg)
	case config.DriverPostgres:
		s, err = openPostgres(ctx, cfg)
	case config.DriverMemory:
		s = memory.New()
	default:
		return nil, fmt.Errorf("db: unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("db: open %s storage: %w", cfg.Driver, err)
	}
	return s, nil
}

// The helpers keep a failed constructor's typed nil out of the interface.

func openSQLite(ctx context.Context, cfg config.StorageConfig) (ports.Storage, error) {
	s, err := sqlite.NewStorage(ctx, cfg.Path, cfg.Namespace)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openRedis(ctx context.Context, cfg config.StorageConfig) (ports.Storage, error) {
	s, err := redis.Connect(ctx, redis.Config{
		Addr:      cfg.Redis.Addr,
		DB:        cfg.Redis.DB,
		Namespace: cfg.Namespace,
		Timeout:   connectTimeout,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openMongo(ctx context.Context, cfg config.StorageConfig) (ports.Storage, error) {
	s, err := mongo.Connect(ctx, mongo.Config{
		URI:       cfg.Mongo.URI,
		Database:  cfg.Mongo.Database,
		Namespace: cfg.Namespace,
		Timeout:   connectTimeout,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg config.StorageConfig) (ports.Storage, error) {
	s, err := postgres.Connect(ctx, postgres.Config{
		URL:       cfg.Postgres.URL,
		Namespace: cfg.Namespace,
		Timeout:   connectTimeout,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
