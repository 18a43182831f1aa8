package nav

import (
	"context"
	"testing"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/ui/locale"
)

// ---- stubs ----

type stubStore struct {
	user    *domain.User
	cleared int
}

func (s *stubStore) Get(context.Context) *domain.User           { return s.user }
func (s *stubStore) Set(_ context.Context, u domain.User) error { s.user = &u; return nil }
func (s *stubStore) Clear(context.Context)                      { s.user = nil; s.cleared++ }
func (s *stubStore) Users(context.Context) map[string]any       { return map[string]any{} }

type recordingNavigator struct {
	pages []domain.Page
}

func (n *recordingNavigator) Redirect(page domain.Page) { n.pages = append(n.pages, page) }

// ---- tests ----

func TestRender_Anonymous(t *testing.T) {
	n := Render(nil, locale.English)
	if n.State != StateAnonymous || len(n.Items) != 0 || n.Avatar != nil {
		t.Fatalf("expected untouched nav, got %+v", n)
	}
}

func TestRender_Teacher(t *testing.T) {
	n := Render(&domain.User{ID: "1", Login: "alice", Role: domain.RoleTeacher}, locale.Russian)

	if n.State != StateTeacher {
		t.Fatalf("expected teacher state, got %s", n.State)
	}
	want := []Item{
		{Kind: KindLink, Label: "Создать задание", Target: domain.PageTeacher},
		{Kind: KindLink, Label: "Кабинет", Target: domain.PageTeacherDashboard},
		{Kind: KindLogout, Label: "Выйти"},
	}
	if len(n.Items) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), n.Items)
	}
	for i := range want {
		if n.Items[i] != want[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, want[i], n.Items[i])
		}
	}
	if n.Avatar == nil || n.Avatar.Initial != "A" || n.Avatar.Class != "nav-avatar teacher" || n.Avatar.Title != "alice" {
		t.Fatalf("unexpected avatar: %+v", n.Avatar)
	}
	if n.RoleLabel != "Учитель" {
		t.Fatalf("unexpected role label %q", n.RoleLabel)
	}
}

func TestRender_Student(t *testing.T) {
	n := Render(&domain.User{ID: "2", Login: "bob", Role: domain.RoleStudent}, locale.English)

	if n.State != StateStudent || len(n.Items) != 2 {
		t.Fatalf("unexpected nav: %+v", n)
	}
	if n.Items[0].Kind != KindAction || n.Items[0].Target != domain.PageStudent {
		t.Fatalf("expected assignments action first, got %+v", n.Items[0])
	}
	if n.Items[1].Kind != KindLogout {
		t.Fatalf("expected logout second, got %+v", n.Items[1])
	}
	if n.Avatar.Initial != "B" || n.Avatar.Class != "nav-avatar student" {
		t.Fatalf("unexpected avatar: %+v", n.Avatar)
	}
}

func TestRender_UnknownRoleFallsBackToStudentLayout(t *testing.T) {
	n := Render(&domain.User{Login: "", Role: "admin"}, locale.English)

	if n.State != StateStudent || n.Items[0].Target != domain.PageStudent {
		t.Fatalf("expected student layout, got %+v", n)
	}
	if n.RoleLabel != "admin" {
		t.Fatalf("expected raw role label, got %q", n.RoleLabel)
	}
	if n.Avatar.Initial != "?" || n.Avatar.Class != "nav-avatar admin" {
		t.Fatalf("unexpected avatar: %+v", n.Avatar)
	}
}

func TestLogout(t *testing.T) {
	store := &stubStore{user: &domain.User{Login: "alice", Role: domain.RoleTeacher}}
	navigator := &recordingNavigator{}

	Logout(context.Background(), store, navigator)

	if store.user != nil || store.cleared != 1 {
		t.Fatalf("expected session cleared, got %+v", store)
	}
	if len(navigator.pages) != 1 || navigator.pages[0] != domain.PageIndex {
		t.Fatalf("expected redirect to index, got %v", navigator.pages)
	}
}

func TestLogout_WithoutSession(t *testing.T) {
	store := &stubStore{}
	navigator := &recordingNavigator{}

	Logout(context.Background(), store, navigator)

	if store.cleared != 1 || len(navigator.pages) != 1 || navigator.pages[0] != domain.PageIndex {
		t.Fatalf("expected clear and redirect, got store=%+v pages=%v", store, navigator.pages)
	}
}
