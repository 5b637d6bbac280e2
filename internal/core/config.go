package core

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration.
type Config struct {
	Addr         string `yaml:"addr"`           // HTTP listen address
	PatternsDir  string `yaml:"patterns_dir"`   // Rendered document output directory
	LogLevel     string `yaml:"log_level"`      // debug, info, warn, error
	LogFormat    string `yaml:"log_format"`     // json or console
	MaxBodyBytes int64  `yaml:"max_body_bytes"` // Request body cap

	// Per-client budgets, in requests per minute.
	GenerateRateLimit int `yaml:"generate_rate_limit"`
	DownloadRateLimit int `yaml:"download_rate_limit"`
	ListRateLimit     int `yaml:"list_rate_limit"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Addr:              ":5000",
		PatternsDir:       "patterns",
		LogLevel:          "info",
		LogFormat:         "json",
		MaxBodyBytes:      16 << 20,
		GenerateRateLimit: 10,
		DownloadRateLimit: 20,
		ListRateLimit:     30,
	}
}

// LoadConfig builds the configuration from an optional YAML file and
// environment variables. Environment values win over file values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Addr = getEnvOrDefault("ADDR", cfg.Addr)
	cfg.PatternsDir = getEnvOrDefault("PATTERNS_FOLDER", cfg.PatternsDir)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)

	if v := os.Getenv("MAX_CONTENT_LENGTH"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse MAX_CONTENT_LENGTH: %w", err)
		}
		cfg.MaxBodyBytes = n
	}

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
