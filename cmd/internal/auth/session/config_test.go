package session

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigFromEnv_Default(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.TTL != 7*24*time.Hour {
		t.Fatalf("default TTL = %v, want one week", cfg.TTL)
	}
}

func TestLoadConfigFromEnv_Override(t *testing.T) {
	t.Setenv("LINEAGE_SESSION_TTL", "48h")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.TTL != 48*time.Hour {
		t.Fatalf("TTL = %v, want 48h", cfg.TTL)
	}
}

func TestLoadConfigFromEnv_Invalid(t *testing.T) {
	cases := []string{"nope", "-1h", "0s"}

	for _, v := range cases {
		t.Setenv("LINEAGE_SESSION_TTL", v)
		if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrConfig) {
			t.Fatalf("LINEAGE_SESSION_TTL=%q: expected ErrConfig, got %v", v, err)
		}
	}
}
