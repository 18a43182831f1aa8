// Package mongo keeps client-local storage in a MongoDB collection.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for a MongoDB-backed storage.
type Config struct {
	URI       string
	Database  string
	Namespace string
	Timeout   time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// ensures the storage index and returns the storage. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*Storage, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := NewStorage(client, client.Database(cfg.Database), cfg.Namespace)
	if err := s.EnsureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, err
	}
	return s, nil
}
