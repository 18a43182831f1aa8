package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestStorage_Filter(t *testing.T) {
	s := &Storage{namespace: "testhub"}

	got := s.filter("users")
	want := bson.M{"namespace": "testhub", "key": "users"}
	if len(got) != len(want) || got["namespace"] != want["namespace"] || got["key"] != want["key"] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{
		URI:       "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200",
		Database:  "testhub",
		Namespace: "testhub",
		Timeout:   500 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected connect error for closed port")
	}
}
