// Package nav builds the role-specific navigation bar of a page.
package nav

import (
	"context"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/core/ports"
	"github.com/testhub/client/internal/ui/locale"
)

type State string

const (
	// StateAnonymous leaves the page's default navigation untouched.
	StateAnonymous State = "anonymous"
	StateTeacher   State = "teacher"
	StateStudent   State = "student"
)

type ItemKind string

const (
	KindLink   ItemKind = "link"
	KindAction ItemKind = "action"
	KindLogout ItemKind = "logout"
)

// Item is one control in the bar. Target is empty for the logout control.
type Item struct {
	Kind   ItemKind
	Label  string
	Target domain.Page
}

// Avatar is the round initial badge; activating it opens the profile panel.
type Avatar struct {
	Initial string
	Class   string
	Title   string
}

type Nav struct {
	State     State
	RoleLabel string
	Items     []Item
	Avatar    *Avatar
}

// Render derives the navigation for user. Teachers get two links, everyone
// else signed in gets the single assignments action; both get logout and the
// avatar, in that order.
func Render(user *domain.User, labels locale.Labels) Nav {
	if user == nil {
		return Nav{State: StateAnonymous}
	}

	n := Nav{
		RoleLabel: labels.NavRole(user.Role),
		Avatar: &Avatar{
			Initial: user.Initial(),
			Class:   "nav-avatar " + string(user.Role),
			Title:   user.Login,
		},
	}

	if user.IsTeacher() {
		n.State = StateTeacher
		n.Items = []Item{
			{Kind: KindLink, Label: labels.CreateAssignment, Target: domain.PageTeacher},
			{Kind: KindLink, Label: labels.Dashboard, Target: domain.PageTeacherDashboard},
		}
	} else {
		n.State = StateStudent
		n.Items = []Item{
			{Kind: KindAction, Label: labels.GoToAssignments, Target: domain.PageStudent},
		}
	}
	n.Items = append(n.Items, Item{Kind: KindLogout, Label: labels.Logout})
	return n
}

// Logout ends the session and returns to the landing page. It redirects even
// when there was no session to clear.
func Logout(ctx context.Context, store ports.SessionStore, navigator ports.Navigator) {
	store.Clear(ctx)
	navigator.Redirect(domain.PageIndex)
}
