package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrAPI        = errors.New("api request failed")
	ErrNetwork    = errors.New("network exchange failed")
	ErrStorage    = errors.New("local storage failed")
)

// Fixed client-side validation messages.
const (
	MsgMissingFields      = "missing fields"
	MsgPasswordMismatch   = "password mismatch"
	MsgMissingCredentials = "missing credentials"
)

// ValidationError is raised before any network call when form input is
// incomplete or inconsistent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return "validation: " + e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// APIError means the backend answered with a non-success status. Message is
// displayable to the user: the server's error text or a per-operation
// fallback.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *APIError) Is(target error) bool { return target == ErrAPI }

// NetworkError means the exchange with the backend could not complete.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network: " + e.Op
	}
	return fmt.Sprintf("network: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

func (e *NetworkError) Unwrap() error { return e.Err }

// StorageError wraps a failure of the client-local key-value storage.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func (e *StorageError) Unwrap() error { return e.Err }
