package client

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/core/ports"
)

var errNoUser = errors.New("response carries no user")

type registerRequest struct {
	Login    string      `json:"login"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authResponse struct {
	User *domain.User `json:"user"`
}

// Register validates the registration form, creates the account and makes it
// the current session. No request is sent when validation fails.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (user *domain.User, err error) {
	defer func() { c.record(opRegister, err) }()

	login := strings.TrimSpace(in.Login)
	form := registerForm{
		Login:           login,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		Role:            string(in.Role),
	}
	if err := c.forms.validate(form, domain.MsgMissingFields); err != nil {
		return nil, err
	}

	var resp authResponse
	req := registerRequest{Login: login, Password: in.Password, Role: in.Role}
	if err := c.exchange(ctx, opRegister, http.MethodPost, "/api/register", req, &resp, c.fallbacks.Register); err != nil {
		return nil, err
	}
	return c.establish(ctx, opRegister, resp)
}

// Login validates the login form, authenticates and makes the returned user
// the current session. No request is sent when validation fails.
func (c *Client) Login(ctx context.Context, in ports.LoginInput) (user *domain.User, err error) {
	defer func() { c.record(opLogin, err) }()

	login := strings.TrimSpace(in.Login)
	if err := c.forms.validate(loginForm{Login: login, Password: in.Password}, domain.MsgMissingCredentials); err != nil {
		return nil, err
	}

	var resp authResponse
	req := loginRequest{Login: login, Password: in.Password}
	if err := c.exchange(ctx, opLogin, http.MethodPost, "/api/login", req, &resp, c.fallbacks.Login); err != nil {
		return nil, err
	}
	return c.establish(ctx, opLogin, resp)
}

// establish stores the user from a successful response and sends the user to
// the landing page.
func (c *Client) establish(ctx context.Context, op string, resp authResponse) (*domain.User, error) {
	if resp.User == nil {
		return nil, &domain.NetworkError{Op: op, Err: errNoUser}
	}
	if err := c.sessions.Set(ctx, *resp.User); err != nil {
		return nil, err
	}

	c.log.Info().
		Str("operation", op).
		Str("login", resp.User.Login).
		Str("role", string(resp.User.Role)).
		Msg("session established")

	c.nav.Redirect(domain.PageIndex)
	user := *resp.User
	return &user, nil
}
