package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_MissingSecretFails(t *testing.T) {
	// No JWT_SECRET in the environment: loading must fail rather than
	// fall back to a known development value. t.Setenv registers the
	// restore before the variable is removed.
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Fatalf("unexpected secret %q", cfg.JWTSecret)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.Port)
	}
	if cfg.TokenTTL() != time.Hour {
		t.Fatalf("unexpected default token ttl %v", cfg.TokenTTL())
	}
	if cfg.Mongo.Database != "marketplace" {
		t.Fatalf("unexpected default database %q", cfg.Mongo.Database)
	}
	if cfg.Login.AttemptLimit != 10 || cfg.Login.AttemptWindow != time.Minute {
		t.Fatalf("unexpected login limiter defaults: %+v", cfg.Login)
	}
}
