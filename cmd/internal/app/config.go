package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32

	// If true, /readyz returns 503 when the database is unreachable.
	ReadinessRequireDB bool
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr: EnvString("LINEAGE_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel: EnvString("LINEAGE_LOG_LEVEL", "info"),

		ReadHeaderTimeout: EnvDuration("LINEAGE_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("LINEAGE_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("LINEAGE_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("LINEAGE_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("LINEAGE_HTTP_MAX_HEADER_BYTES", 1<<20),

		DatabaseURL: EnvString("LINEAGE_DATABASE_URL", ""),
		DBMaxConns:  EnvInt32("LINEAGE_DB_MAX_CONNS", 10),
		DBMinConns:  EnvInt32("LINEAGE_DB_MIN_CONNS", 0),

		ReadinessRequireDB: EnvBool("LINEAGE_READINESS_REQUIRE_DB", true),
	}
}
