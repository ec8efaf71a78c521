// Package config handles process and global configuration.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds configuration read from environment variables.
type Config struct {
	AccessToken    string `envconfig:"OPENCITATIONS_ACCESS_TOKEN"`
	BaseURL        string `envconfig:"OPENCITATIONS_BASE_URL"`
	TimeoutSeconds int    `envconfig:"OPENCITATIONS_TIMEOUT" default:"60"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &c, nil
}

// Timeout returns the configured HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveToken returns the first non-empty token from the given sources,
// ordered highest precedence first (typically: command-line flag,
// environment, global config file).
func ResolveToken(sources ...string) string {
	for _, s := range sources {
		if s != "" {
			return s
		}
	}
	return ""
}
