package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/core/ports"
)

// Storage keys shared with the web front end.
const (
	CurrentUserKey = "currentUser"
	UsersKey       = "users"
)

type sessionStore struct {
	storage ports.Storage
	log     zerolog.Logger
}

// NewSessionStore returns a SessionStore persisting into storage.
func NewSessionStore(storage ports.Storage, log zerolog.Logger) ports.SessionStore {
	return &sessionStore{storage: storage, log: log}
}

// Get reads and decodes the current user. Read and parse failures degrade to
// nil.
func (s *sessionStore) Get(ctx context.Context) *domain.User {
	raw, ok, err := s.storage.GetItem(ctx, CurrentUserKey)
	if err != nil {
		s.log.Debug().Err(err).Str("key", CurrentUserKey).Msg("session read failed")
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var user *domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Debug().Err(err).Str("key", CurrentUserKey).Msg("session payload unreadable")
		return nil
	}
	return user
}

func (s *sessionStore) Set(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return &domain.StorageError{Op: "encode", Key: CurrentUserKey, Err: err}
	}
	if err := s.storage.SetItem(ctx, CurrentUserKey, string(payload)); err != nil {
		return &domain.StorageError{Op: "set", Key: CurrentUserKey, Err: err}
	}
	s.log.Debug().Str("login", user.Login).Str("role", string(user.Role)).Msg("session stored")
	return nil
}

func (s *sessionStore) Clear(ctx context.Context) {
	if err := s.storage.RemoveItem(ctx, CurrentUserKey); err != nil {
		s.log.Debug().Err(err).Str("key", CurrentUserKey).Msg("session clear failed")
	}
}

// Users reads the legacy registry. Nothing writes it any more.
func (s *sessionStore) Users(ctx context.Context) map[string]any {
	raw, ok, err := s.storage.GetItem(ctx, UsersKey)
	if err != nil || !ok || raw == "" {
		return map[string]any{}
	}
	var users map[string]any
	if err := json.Unmarshal([]byte(raw), &users); err != nil || users == nil {
		return map[string]any{}
	}
	return users
}
