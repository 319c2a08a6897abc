package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	if cfg.Server.Address != ":4100" {
		t.Errorf("address = %q, want :4100", cfg.Server.Address)
	}
	if cfg.Database.Driver != "pgx" {
		t.Errorf("driver = %q, want pgx", cfg.Database.Driver)
	}
	if cfg.JWT.AccessTTLHours != 24 || cfg.JWT.RefreshTTLDays != 7 {
		t.Errorf("token ttls = %dh/%dd, want 24h/7d", cfg.JWT.AccessTTLHours, cfg.JWT.RefreshTTLDays)
	}
	if cfg.RateLimit.Mode != "production" {
		t.Errorf("rate limit mode = %q, want production", cfg.RateLimit.Mode)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TEST_MODE", "true")

	var cfg Config
	cfg.JWT.Secret = "file-secret"
	applyEnvOverrides(&cfg)

	if cfg.Database.URL != "postgres://env/db" {
		t.Errorf("database url = %q", cfg.Database.URL)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("jwt secret = %q, want env override", cfg.JWT.Secret)
	}
	if cfg.RateLimit.Mode != "test" {
		t.Errorf("rate limit mode = %q, want test", cfg.RateLimit.Mode)
	}
}
