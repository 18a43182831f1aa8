package ports

import (
	"context"

	"github.com/testhub/client/internal/core/domain"
)

// SessionStore owns the current user record. Readers get copies.
type SessionStore interface {
	// Get returns the persisted user, or nil when there is none or it cannot
	// be read. It never fails.
	Get(ctx context.Context) *domain.User
	// Set replaces the persisted user.
	Set(ctx context.Context, user domain.User) error
	// Clear removes the persisted user. Absence is not an error.
	Clear(ctx context.Context)
	// Users returns the legacy user registry, or an empty map.
	Users(ctx context.Context) map[string]any
}
