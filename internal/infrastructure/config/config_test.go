package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIBase != "http://localhost:3000" {
		t.Fatalf("unexpected api base %q", cfg.APIBase)
	}
	if cfg.Locale != "en" || cfg.LogLevel != "info" || !cfg.LogPretty {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.Namespace != "testhub" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if !strings.HasSuffix(cfg.Storage.Path, "storage.db") {
		t.Fatalf("expected default storage path, got %q", cfg.Storage.Path)
	}
	if cfg.Storage.Redis.Addr != "localhost:6379" || cfg.Storage.Mongo.Database != "testhub" {
		t.Fatalf("unexpected backend defaults: %+v", cfg.Storage)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"TESTHUB_API_BASE":         "https://tests.example.com",
		"TESTHUB_LOCALE":           "ru",
		"TESTHUB_REQUEST_TIMEOUT":  "3s",
		"TESTHUB_METRICS_TEXTFILE": "/tmp/testhub.prom",
		"TESTHUB_STORAGE":          "redis",
		"TESTHUB_STORAGE_PATH":     "/tmp/s.db",
		"REDIS_ADDR":               "redis:6380",
		"REDIS_DB":                 "2",
		"LOG_PRETTY":               "false",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIBase != "https://tests.example.com" || cfg.Locale != "ru" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.RequestTimeout != 3*time.Second || cfg.MetricsTextfile != "/tmp/testhub.prom" || cfg.LogPretty {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Storage.Driver != DriverRedis || cfg.Storage.Path != "/tmp/s.db" {
		t.Fatalf("unexpected storage overrides: %+v", cfg.Storage)
	}
	if cfg.Storage.Redis.Addr != "redis:6380" || cfg.Storage.Redis.DB != 2 {
		t.Fatalf("unexpected redis overrides: %+v", cfg.Storage.Redis)
	}
}

func TestLoadFrom_Rejects(t *testing.T) {
	cases := []map[string]string{
		{"TESTHUB_STORAGE": "etcd"},
		{"TESTHUB_LOCALE": "de"},
		{"TESTHUB_REQUEST_TIMEOUT": "0s"},
		{"TESTHUB_REQUEST_TIMEOUT": "soon"},
		{"TESTHUB_STORAGE": "postgres"},
	}
	for _, env := range cases {
		if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(env)); err == nil {
			t.Fatalf("expected error for %v", env)
		}
	}
}

func TestLoadFrom_Postgres(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"TESTHUB_STORAGE": "postgres",
		"DATABASE_URL":    "postgres://testhub@localhost:5432/testhub",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Driver != DriverPostgres || cfg.Storage.Postgres.URL != "postgres://testhub@localhost:5432/testhub" {
		t.Fatalf("unexpected storage config: %+v", cfg.Storage)
	}
}
