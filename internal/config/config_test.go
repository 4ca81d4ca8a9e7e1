package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must fall back to defaults: %v", err)
	}
	if cfg.FMP.BaseURL != "https://financialmodelingprep.com/api" {
		t.Errorf("unexpected default base URL: %q", cfg.FMP.BaseURL)
	}
	if cfg.FMP.CallsPerMinute != 300 {
		t.Errorf("expected default call budget 300, got %d", cfg.FMP.CallsPerMinute)
	}
	if cfg.Storage.Backend != "csv" {
		t.Errorf("expected default backend csv, got %q", cfg.Storage.Backend)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Log.Level)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
fmp:
  api_key: from-file
  calls_per_minute: 10
storage:
  backend: sqlite
  sqlite_path: /tmp/test.db
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("FMP_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FMP.APIKey != "from-env" {
		t.Errorf("env must override file, got %q", cfg.FMP.APIKey)
	}
	if cfg.FMP.CallsPerMinute != 10 {
		t.Errorf("expected calls_per_minute 10, got %d", cfg.FMP.CallsPerMinute)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.SQLitePath != "/tmp/test.db" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}

	cfg.Storage.Backend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported backend")
	}

	cfg.Storage.Backend = "csv"
	cfg.FMP.CallsPerMinute = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative call budget")
	}
}
