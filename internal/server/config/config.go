// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server runtime configuration.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"SHEETSYNC_ADDR" envDefault:":8080"`

	// DBPath is the SQLite database file.
	DBPath string `env:"SHEETSYNC_DB" envDefault:"sheetsync-server.db"`

	// JWTSecret signs access tokens. Required; there is no safe default.
	JWTSecret string `env:"SHEETSYNC_JWT_SECRET,required"`

	// AccessTokenTTL is the access token lifetime.
	AccessTokenTTL time.Duration `env:"SHEETSYNC_ACCESS_TTL" envDefault:"15m"`

	// RefreshTokenTTL is the refresh token lifetime.
	RefreshTokenTTL time.Duration `env:"SHEETSYNC_REFRESH_TTL" envDefault:"720h"`

	// AuthRateLimit caps requests per client IP on the auth endpoints
	// within AuthRateWindow.
	AuthRateLimit  int           `env:"SHEETSYNC_AUTH_RATE_LIMIT" envDefault:"10"`
	AuthRateWindow time.Duration `env:"SHEETSYNC_AUTH_RATE_WINDOW" envDefault:"1m"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"SHEETSYNC_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
