package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	APIBase         string        `env:"TESTHUB_API_BASE,        default=http://localhost:3000"`
	Locale          string        `env:"TESTHUB_LOCALE,          default=en"`
	RequestTimeout  time.Duration `env:"TESTHUB_REQUEST_TIMEOUT, default=10s"`
	MetricsTextfile string        `env:"TESTHUB_METRICS_TEXTFILE"`
	LogLevel        string        `env:"LOG_LEVEL,               default=info"`
	LogPretty       bool          `env:"LOG_PRETTY,              default=true"`

	Storage StorageConfig
}

type StorageConfig struct {
	Driver    string `env:"TESTHUB_STORAGE,           default=sqlite"`
	Path      string `env:"TESTHUB_STORAGE_PATH"`
	Namespace string `env:"TESTHUB_STORAGE_NAMESPACE, default=testhub"`

	Redis    RedisConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=testhub"`
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper; tests pass a MapLookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStoragePath()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverRedis, DriverMongo, DriverMemory:
	case DriverPostgres:
		if c.Storage.Postgres.URL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Locale {
	case "en", "ru":
	default:
		return fmt.Errorf("config: unsupported locale %q", c.Locale)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".testhub", "storage.db")
	}
	return filepath.Join(home, ".testhub", "storage.db")
}
