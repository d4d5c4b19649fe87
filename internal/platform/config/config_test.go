package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		JWT: JWTConfig{
			AccessSecret:  "access-secret",
			RefreshSecret: "refresh-secret",
		},
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.AccessTTL() != 15*time.Minute {
		t.Fatalf("expected 15m default access TTL, got %s", cfg.JWT.AccessTTL())
	}
	if cfg.JWT.RefreshTTL() != 365*24*time.Hour {
		t.Fatalf("expected 1y default refresh TTL, got %s", cfg.JWT.RefreshTTL())
	}
}

func TestValidateParsesExpiries(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessTokenExpiry = "30m"
	cfg.JWT.RefreshTokenExpiry = "720h"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.AccessTTL() != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", cfg.JWT.AccessTTL())
	}
	if cfg.JWT.RefreshTTL() != 720*time.Hour {
		t.Fatalf("expected 720h, got %s", cfg.JWT.RefreshTTL())
	}
}

func TestValidateRequiresSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing access secret accepted")
	}

	cfg = validConfig()
	cfg.JWT.RefreshSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing refresh secret accepted")
	}
}

func TestValidateRejectsLongAccessExpiry(t *testing.T) {
	cfg := validConfig()
	// A year-long access token is a misconfiguration.
	cfg.JWT.AccessTokenExpiry = "8760h"
	if err := cfg.Validate(); err == nil {
		t.Fatal("year-long access token expiry accepted")
	}

	cfg = validConfig()
	cfg.JWT.AccessTokenExpiry = "24h"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("24h access expiry rejected: %v", err)
	}
}

func TestValidateRejectsBadDurations(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessTokenExpiry = "fifteen minutes"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unparseable access expiry accepted")
	}

	cfg = validConfig()
	cfg.JWT.AccessTokenExpiry = "-15m"
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative access expiry accepted")
	}

	cfg = validConfig()
	cfg.JWT.AccessTokenExpiry = "1h"
	cfg.JWT.RefreshTokenExpiry = "30m"
	if err := cfg.Validate(); err == nil {
		t.Fatal("refresh expiry shorter than access expiry accepted")
	}
}
