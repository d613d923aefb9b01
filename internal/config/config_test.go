package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRIDE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.stride.app" {
		t.Errorf("base_url = %q, want default", cfg.API.BaseURL)
	}
	if cfg.UI.ToastDurationMS != 3000 {
		t.Errorf("toast_duration_ms = %d, want 3000", cfg.UI.ToastDurationMS)
	}
	if cfg.Session.Secret != "" {
		t.Errorf("session secret should default empty, got %q", cfg.Session.Secret)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[database]
path = "/tmp/stride-test.db"

[api]
base_url = "http://localhost:8080"

[ui]
toast_duration_ms = 1500
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STRIDE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/stride-test.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.UI.ToastDurationMS != 1500 {
		t.Errorf("toast_duration_ms = %d", cfg.UI.ToastDurationMS)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("STRIDE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Session.Secret = "abc123"
	cfg.UI.DateFormat = "02/01"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Session.Secret != "abc123" {
		t.Errorf("secret = %q, want abc123", got.Session.Secret)
	}
	if got.UI.DateFormat != "02/01" {
		t.Errorf("date_format = %q, want 02/01", got.UI.DateFormat)
	}
}
