package session

import (
	"os"
	"time"
)

// Config defines runtime configuration for the session subsystem.
type Config struct {
	// TTL is the sliding expiry window: applied at password sign-in and
	// re-applied on every successful token sign-in. Validation never extends it.
	TTL time.Duration
}

// DefaultConfig returns the default configuration: a one-week window.
func DefaultConfig() Config {
	return Config{
		TTL: 7 * 24 * time.Hour,
	}
}

// LoadConfigFromEnv loads session configuration from environment variables.
//
// Optional:
//   - LINEAGE_SESSION_TTL (Go duration string, must be positive)
//
// Returns ErrConfig if configuration is invalid.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("LINEAGE_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, ErrConfig
		}
		cfg.TTL = d
	}

	return cfg, nil
}
