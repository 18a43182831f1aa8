// Package memory is a process-local Storage, used by tests and by the
// "memory" storage driver.
package memory

import (
	"context"
	"sync"

	"github.com/testhub/client/internal/core/ports"
)

type Storage struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ ports.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{items: make(map[string]string)}
}

func (s *Storage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Storage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *Storage) Ping(context.Context) error { return nil }

func (s *Storage) Close() error { return nil }
