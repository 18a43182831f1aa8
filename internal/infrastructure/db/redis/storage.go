package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/testhub/client/internal/core/ports"
)

// Storage keeps client-local storage in Redis so several machines can share
// one session. Key format: <namespace>:<key>. Items never expire.
type Storage struct {
	client    *redis.Client
	namespace string
}

var _ ports.Storage = (*Storage)(nil)

// NewStorage wraps an already connected client.
func NewStorage(client *redis.Client, namespace string) *Storage {
	return &Storage{client: client, namespace: namespace}
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get item: %w", err)
	}
	return v, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set item: %w", err)
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) key(key string) string {
	return s.namespace + ":" + key
}
