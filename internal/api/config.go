package api

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds backend connection settings.
type Config struct {
	// BaseURL is the backend root; operation paths are appended under
	// /api. Default: "http://localhost:8000".
	BaseURL string

	// Timeout is the per-request transport timeout. This layer imposes
	// no timeout of its own beyond the HTTP client's. Default: 60s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000",
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("SMARTLEARN_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("SMARTLEARN_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("SMARTLEARN_API_URL must not be empty")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid SMARTLEARN_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("SMARTLEARN_API_URL must be http or https, got %q", u.Scheme)
	}
	return nil
}
