package ports

import "context"

// Storage is the client-local key-value store the session lives in. It
// mirrors the browser's localStorage: string keys, string values, and a
// missing key is not an error.
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
