package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
db:
  url: postgres://localhost:5432/pulsewatch
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Env != "development" {
		t.Fatalf("want default env development, got %s", cfg.Env)
	}
	if cfg.Port != 8080 {
		t.Fatalf("want default port 8080, got %d", cfg.Port)
	}
	if cfg.Cache.Backend != "local" {
		t.Fatalf("want default cache backend local, got %s", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Fatalf("want default ttl 5m, got %v", cfg.Cache.TTL)
	}
	if cfg.DB.MaxOpenConns != 50 {
		t.Fatalf("want default max_open_conns 50, got %d", cfg.DB.MaxOpenConns)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
env: production
port: 9000
db:
  url: postgres://db:5432/pulsewatch
cache:
  backend: redis
  ttl: 30s
redis:
  url: redis://cache:6379/1
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Env != "production" || cfg.Port != 9000 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.TTL != 30*time.Second {
		t.Fatalf("cache overrides not applied: %+v", cfg.Cache)
	}
	if cfg.Redis.URL != "redis://cache:6379/1" {
		t.Fatalf("redis url not applied: %s", cfg.Redis.URL)
	}
}

func TestLoadConfig_MissingDBURL(t *testing.T) {
	path := writeConfig(t, `
port: 8080
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected validation error for missing db url")
	}
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	path := writeConfig(t, `
db:
  url: postgres://localhost:5432/pulsewatch
cache:
  backend: memcached
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected validation error for unknown cache backend")
	}
}
