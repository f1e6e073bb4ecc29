package authapi

import (
	"os"
	"strconv"
	"strings"
)

// Config contains transport-level knobs for the API handlers.
type Config struct {
	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64
}

// DefaultConfig returns defaults suitable for development.
func DefaultConfig() Config {
	return Config{
		MaxBodyBytes: 1 << 20,
	}
}

// LoadConfigFromEnv loads API configuration from environment variables.
//
// Optional:
//   - LINEAGE_HTTP_MAX_BODY_BYTES
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("LINEAGE_HTTP_MAX_BODY_BYTES")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxBodyBytes = n
		}
	}

	return cfg
}
