// Package redis keeps client-local storage in a Redis database shared between
// machines.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for a Redis-backed storage.
type Config struct {
	Addr      string
	DB        int
	Namespace string
	Timeout   time.Duration
}

// Connect dials Redis, validates connectivity with a ping and returns the
// storage. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*Storage, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewStorage(client, cfg.Namespace), nil
}
