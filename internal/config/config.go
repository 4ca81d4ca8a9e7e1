package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	FMP struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		CallsPerMinute int    `yaml:"calls_per_minute"`
	} `yaml:"fmp"`
	Storage struct {
		Backend    string `yaml:"backend"` // "csv", "sqlite" or "none"
		DataDir    string `yaml:"data_dir"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"storage"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		cfg.FMP.APIKey = v
	}
	if v := os.Getenv("FMP_BASE_URL"); v != "" {
		cfg.FMP.BaseURL = v
	}
	if v := os.Getenv("FMP_CALLS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FMP.CallsPerMinute = n
		}
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("NEWS_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.FMP.BaseURL == "" {
		cfg.FMP.BaseURL = "https://financialmodelingprep.com/api"
	}
	if cfg.FMP.CallsPerMinute == 0 {
		// Starter plan allows 300 calls / minute.
		cfg.FMP.CallsPerMinute = 300
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "csv"
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data/fmp"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/news_sentinel.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
// The API key is deliberately not required here: fetch operations fail
// with collector.ErrMissingAPIKey instead, so offline work (annotation,
// aggregation) still runs without credentials.
func (c *Config) Validate() error {
	if c.FMP.BaseURL == "" {
		return fmt.Errorf("fmp.base_url is required")
	}
	if c.FMP.CallsPerMinute < 0 {
		return fmt.Errorf("fmp.calls_per_minute must not be negative")
	}
	switch c.Storage.Backend {
	case "csv", "sqlite", "none":
	default:
		return fmt.Errorf("storage.backend must be csv, sqlite or none, got %q", c.Storage.Backend)
	}
	return nil
}
