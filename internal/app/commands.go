package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/testhub/client/internal/core/credential"
	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/core/ports"
	"github.com/testhub/client/internal/ui/feedback"
	"github.com/testhub/client/internal/ui/nav"
	"github.com/testhub/client/internal/ui/profile"
	"github.com/testhub/client/internal/ui/textview"
)

var (
	// ErrUsage is returned for an unknown command or bad flags.
	ErrUsage = errors.New("usage")
	// ErrReported means the failure was already shown to the user.
	ErrReported = errors.New("command failed")
	// ErrNoSession is returned by commands that need a signed-in user.
	ErrNoSession = errors.New("not signed in")
	// ErrUnhealthy is returned by doctor when a dependency is down.
	ErrUnhealthy = errors.New("dependencies unhealthy")
)

type command func(ctx context.Context, args []string) error

func (a *App) commands() map[string]command {
	return map[string]command{
		"register": a.register,
		"login":    a.login,
		"logout":   a.logout,
		"nav":      a.nav,
		"profile":  a.profile,
		"whoami":   a.whoami,
		"doctor":   a.doctor,
	}
}

// Commands lists the command names in order.
func (a *App) Commands() []string {
	names := make([]string, 0, len(a.commands()))
	for name := range a.commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	cmd, ok := a.commands()[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return cmd(ctx, args[1:])
}

func (a *App) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flags("register")
	login := fs.String("login", "", "login")
	password := fs.String("password", "", "password")
	confirm := fs.String("confirm", "", "password confirmation")
	role := fs.String("role", "", "teacher or student")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	_, err := a.client.Register(ctx, ports.RegisterInput{
		Login:           *login,
		Password:        *password,
		ConfirmPassword: *confirm,
		Role:            domain.Role(*role),
	})
	if err != nil {
		return a.report(err)
	}
	return a.renderNav(ctx)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	login := fs.String("login", "", "login")
	password := fs.String("password", "", "password")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	if _, err := a.client.Login(ctx, ports.LoginInput{Login: *login, Password: *password}); err != nil {
		return a.report(err)
	}
	return a.renderNav(ctx)
}

func (a *App) logout(ctx context.Context, _ []string) error {
	nav.Logout(ctx, a.sessions, a.navigator)
	return nil
}

func (a *App) nav(ctx context.Context, _ []string) error {
	return a.renderNav(ctx)
}

func (a *App) renderNav(ctx context.Context) error {
	return textview.Nav(a.out, nav.Render(a.sessions.Get(ctx), a.labels))
}

func (a *App) profile(ctx context.Context, _ []string) error {
	user := a.sessions.Get(ctx)
	if user == nil {
		return ErrNoSession
	}

	var renderErr error
	a.panel.OnChange(func(m profile.Modal) {
		if err := textview.Modal(a.out, m); err != nil && renderErr == nil {
			renderErr = err
		}
	})
	defer a.panel.OnChange(nil)

	select {
	case <-a.panel.Open(ctx, *user):
	case <-ctx.Done():
		a.panel.Close()
		return ctx.Err()
	}
	return renderErr
}

type whoami struct {
	User          *domain.User       `json:"user"`
	Authorization string             `json:"authorization,omitempty"`
	Claims        *credential.Claims `json:"claims,omitempty"`
	LegacyUsers   int                `json:"legacy_users"`
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	user := a.sessions.Get(ctx)
	out := whoami{User: user, LegacyUsers: len(a.sessions.Users(ctx))}

	if header, ok := credential.Encode(user)[credential.HeaderName]; ok {
		claims, err := credential.Decode(header)
		if err != nil {
			return fmt.Errorf("whoami: %w", err)
		}
		out.Authorization = header
		out.Claims = &claims
	}
	return a.writeJSON(out)
}

func (a *App) doctor(ctx context.Context, _ []string) error {
	report := a.health.Readiness(ctx)
	if err := a.writeJSON(report); err != nil {
		return err
	}
	if !report.Healthy() {
		return ErrUnhealthy
	}
	return nil
}

// report shows err to the user the way a form would and marks the command
// as failed.
func (a *App) report(err error) error {
	fmt.Fprintln(a.out, feedback.Message(err, a.labels, a.log))
	return fmt.Errorf("%w: %w", ErrReported, err)
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
