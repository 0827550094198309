package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	DBPath string `env:"DB_PATH" envDefault:"complaints.db"`

	// Admin credentials. ADMIN_PASSWORD_HASH (bcrypt) takes precedence
	// over the plaintext ADMIN_PASSWORD when set.
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword     string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Session settings
	UseHTTPS        bool  `env:"USE_HTTPS" envDefault:"false"`
	SessionLifetime int64 `env:"SESSION_LIFETIME" envDefault:"3600"` // seconds
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address in :port format.
func (c *Config) Addr() string {
	return ":" + c.Port
}
