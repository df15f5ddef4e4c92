package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full application configuration, loaded from the environment
type Config struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the storage backend: memory, redis or file
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	DataDir     string `env:"DATA_DIR" envDefault:"data"`

	// CatalogSyncWrites persists the catalog on every stock change; when
	// false the flush interval applies instead
	CatalogSyncWrites    bool          `env:"CATALOG_SYNC_WRITES" envDefault:"true"`
	CatalogFlushInterval time.Duration `env:"CATALOG_FLUSH_INTERVAL" envDefault:"10m"`

	// AdminToken protects the admin API; empty disables it
	AdminToken string `env:"ADMIN_TOKEN"`

	// SMTP settings; an empty host switches to log-only notifications
	SMTPHost       string `env:"SMTP_HOST"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername   string `env:"SMTP_USERNAME"`
	SMTPPassword   string `env:"SMTP_PASSWORD"`
	MailFrom       string `env:"MAIL_FROM"`
	MailInternalTo string `env:"MAIL_INTERNAL_TO"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
