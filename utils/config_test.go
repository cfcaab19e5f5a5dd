package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if !cfg.EnforceMaxGridSize || cfg.MaxRows != 6 || cfg.MaxColumns != 8 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.WorkerCount() < 1 {
		t.Errorf("WorkerCount = %d, want >= 1", cfg.WorkerCount())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestWithoutSizeLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	off := cfg.WithoutSizeLimit()
	if off.EnforceMaxGridSize {
		t.Error("policy still enabled")
	}
	if !cfg.EnforceMaxGridSize {
		t.Error("WithoutSizeLimit modified the receiver")
	}

	off.MaxRows = 0
	if err := off.Validate(); err != nil {
		t.Errorf("bounds should be ignored when the policy is off: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"enforce_max_grid_size": false, "workers": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.EnforceMaxGridSize || cfg.Workers != 3 {
		t.Errorf("fields not loaded: %+v", cfg)
	}
	if cfg.MaxRows != DefaultMaxRows || cfg.MaxColumns != DefaultMaxColumns {
		t.Errorf("missing fields should keep defaults: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "nope.json"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should return defaults, got %+v", cfg)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"max_rows": "six"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}
