// Package sqlite keeps client-local storage in a sqlite file, the durable
// default for a single machine.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/testhub/client/internal/core/ports"
)

const createStorageTable = `
CREATE TABLE IF NOT EXISTS local_storage (
	namespace TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL,
	PRIMARY KEY (namespace, key)
);
`

type Storage struct {
	db        *sql.DB
	namespace string
}

var _ ports.Storage = (*Storage)(nil)

// NewStorage opens the database at path and prepares its table.
func NewStorage(ctx context.Context, path, namespace string) (*Storage, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	s := &Storage{db: db, namespace: namespace}
	if err := s.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Storage) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createStorageTable); err != nil {
		return fmt.Errorf("create local_storage table: %w", err)
	}
	return nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
SELECT value FROM local_storage
WHERE namespace = ? AND key = ?`,
		s.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get item: %w", err)
	}
	return value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO local_storage (namespace, key, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.namespace, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set item: %w", err)
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `
DELETE FROM local_storage
WHERE namespace = ? AND key = ?`,
		s.namespace, key,
	); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}
