package memory

import (
	"context"
	"testing"
)

func TestStorage_RoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, ok, err := s.GetItem(ctx, "currentUser"); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := s.SetItem(ctx, "currentUser", `{"login":"a"}`); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	v, ok, err := s.GetItem(ctx, "currentUser")
	if err != nil || !ok || v != `{"login":"a"}` {
		t.Fatalf("unexpected GetItem result: %q %v %v", v, ok, err)
	}
	if err := s.RemoveItem(ctx, "currentUser"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if err := s.RemoveItem(ctx, "currentUser"); err != nil {
		t.Fatalf("RemoveItem of absent key: %v", err)
	}
	if _, ok, _ := s.GetItem(ctx, "currentUser"); ok {
		t.Fatalf("expected key to be removed")
	}
}
