package config

import (
	"os"
	"testing"
)

// writeTempConfig creates a minimal configuration file and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "cfg-*.yaml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return f.Name()
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: "9090"
defaults:
  spot: 250
  payoff_expr: "max(250 - terminal, 0)"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port not overridden: %q", cfg.Server.Port)
	}
	if cfg.Defaults.Spot != 250 {
		t.Fatalf("spot not overridden: %v", cfg.Defaults.Spot)
	}
	// Untouched fields keep their defaults.
	if cfg.Defaults.Paths != 50000 {
		t.Fatalf("paths default lost: %v", cfg.Defaults.Paths)
	}
	if cfg.Defaults.Seed == nil || *cfg.Defaults.Seed != 42 {
		t.Fatalf("seed default lost: %v", cfg.Defaults.Seed)
	}
}

func TestLoadRejectsInvalidDefaults(t *testing.T) {
	path := writeTempConfig(t, `
defaults:
  spot: -5
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for negative spot")
	}
}

func TestLoadRejectsBadPayoff(t *testing.T) {
	path := writeTempConfig(t, `
defaults:
  payoff_expr: "exec('nope')"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for bad payoff expression")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
