package ports

import (
	"context"

	"github.com/testhub/client/internal/core/domain"
)

// RegisterInput is the registration form as the user submitted it.
type RegisterInput struct {
	Login           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
}

// LoginInput is the login form as the user submitted it.
type LoginInput struct {
	Login    string
	Password string
}

// AuthClient performs the registration and login exchanges with the backend.
// On success the returned user is already the current session.
type AuthClient interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*domain.User, error)
}

// AssignmentSource fetches the tests assigned to a student.
type AssignmentSource interface {
	AssignedTests(ctx context.Context, userID domain.UserID) ([]domain.TestAssignment, error)
}
