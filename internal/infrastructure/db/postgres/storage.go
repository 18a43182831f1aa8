// Package postgres keeps client-local storage in a PostgreSQL table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/testhub/client/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

const createStorageTable = `
CREATE TABLE IF NOT EXISTS local_storage (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (namespace, key)
)`

type Config struct {
	URL       string
	Namespace string
	Timeout   time.Duration
}

type Storage struct {
	pool      *pgxpool.Pool
	namespace string
}

var _ ports.Storage = (*Storage)(nil)

// Connect opens a pool, pings it and creates the storage table.
func Connect(ctx context.Context, cfg Config) (*Storage, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	s := NewStorage(pool, cfg.Namespace)
	if err := s.Init(connectCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func NewStorage(pool *pgxpool.Pool, namespace string) *Storage {
	return &Storage{pool: pool, namespace: namespace}
}

func (s *Storage) Init(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createStorageTable); err != nil {
		return fmt.Errorf("create local_storage table: %w", err)
	}
	return nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `
		SELECT value FROM local_storage
		WHERE namespace = $1 AND key = $2
	`, s.namespace, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get item: %w", err)
	}
	return value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO local_storage (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, s.namespace, key, value)
	if err != nil {
		return fmt.Errorf("set item: %w", err)
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `
		DELETE FROM local_storage WHERE namespace = $1 AND key = $2
	`, s.namespace, key); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
