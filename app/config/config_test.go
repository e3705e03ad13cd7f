package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("parses toml file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		content := `
[server]
addr = ":9090"

[database]
url = "postgres://test@localhost:5432/testdb?sslmode=disable"

[auth]
jwt_secret = "test-secret"

[storage]
type = "filesystem"
root = "/tmp/docs"
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Addr != ":9090" {
			t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
		}
		if cfg.Auth.JWTSecret != "test-secret" {
			t.Errorf("Auth.JWTSecret = %q, want %q", cfg.Auth.JWTSecret, "test-secret")
		}
		if cfg.Storage.Type != "filesystem" || cfg.Storage.Root != "/tmp/docs" {
			t.Errorf("Storage = %+v, want filesystem at /tmp/docs", cfg.Storage)
		}
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Addr != ":8080" {
			t.Errorf("Server.Addr = %q, want default :8080", cfg.Server.Addr)
		}
		if cfg.Storage.Type != "inline" {
			t.Errorf("Storage.Type = %q, want default inline", cfg.Storage.Type)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		if err := os.WriteFile(path, []byte("[database]\nurl = \"postgres://file\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("DATABASE_URL", "postgres://env")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Database.URL != "postgres://env" {
			t.Errorf("Database.URL = %q, want env override", cfg.Database.URL)
		}
	})
}

func TestConfigPath(t *testing.T) {
	t.Setenv("POLICYPAL_CONFIG", "/custom/config.toml")
	if got := ConfigPath(); got != "/custom/config.toml" {
		t.Errorf("ConfigPath() = %q, want /custom/config.toml", got)
	}

	t.Setenv("POLICYPAL_CONFIG", "")
	if got := ConfigPath(); got != "config.toml" {
		t.Errorf("ConfigPath() = %q, want config.toml", got)
	}
}
