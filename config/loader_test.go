package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadLayersEnvironmentFileOverBase(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config", "config.yml"), `
atlas:
  log:
    level: warn
services:
  db:
    host: localhost
    port: 5432
`)
	writeFile(t, filepath.Join(root, "config", "production.yml"), `
services:
  db:
    host: db.internal
`)

	cfg, err := Load("production", root)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Atlas.Log.Level != "warn" {
		t.Errorf("expected base log level to survive, got %q", cfg.Atlas.Log.Level)
	}
	db := cfg.Section("service", "db")
	if db["host"] != "db.internal" {
		t.Errorf("expected environment file to override host, got %v", db["host"])
	}
	if db["port"] != 5432 {
		t.Errorf("expected base port to survive, got %v", db["port"])
	}
}

func TestLoadMissingFilesYieldsDefaults(t *testing.T) {
	cfg, err := Load("development", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Atlas.Log.Level != "info" {
		t.Errorf("expected default log level, got %q", cfg.Atlas.Log.Level)
	}
	if cfg.Services == nil {
		t.Error("expected initialized services map")
	}
}

func TestLoadExplicitConfigFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "custom.yml")
	writeFile(t, path, `
hooks:
  telemetry:
    endpoint: localhost:4318
`)

	cfg, err := Load("test", root, WithConfigFile(path))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Section("hook", "telemetry"); got["endpoint"] != "localhost:4318" {
		t.Errorf("expected explicit file to be read, got %v", got)
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config.yml"), "services: [not: a: map")

	if _, err := Load("test", root); err == nil {
		t.Error("expected unparsable config file to fail")
	}
}

func TestLoadEnvFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env.test"), "ATLAS_SMOKE=on\n")
	t.Cleanup(func() { os.Unsetenv("ATLAS_SMOKE") })

	if _, err := Load("test", root); err != nil {
		t.Fatal(err)
	}
	if os.Getenv("ATLAS_SMOKE") != "on" {
		t.Error("expected .env.test to be loaded into the environment")
	}
}
