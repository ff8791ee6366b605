package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Host        string
	Port        int
	Timeout     time.Duration
	ResultLimit int
	WebDir      string
}

// fileConfig is the optional YAML file shape. Every field falls back to the
// built-in default when absent.
type fileConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ResultLimit    int    `yaml:"result_limit"`
	WebDir         string `yaml:"web_dir"`
}

// Load builds the configuration in three layers: built-in defaults, then the
// YAML file named by HAPPYSEARCH_CONFIG (if set), then HAPPYSEARCH_* env vars.
func Load() (*Config, error) {
	cfg := &Config{
		Host:        "127.0.0.1",
		Port:        8000,
		Timeout:     6 * time.Second,
		ResultLimit: 7,
		WebDir:      "./web",
	}

	if path := os.Getenv("HAPPYSEARCH_CONFIG"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.ResultLimit < 1 || cfg.ResultLimit > 50 {
		return nil, fmt.Errorf("result limit %d out of range [1, 50]", cfg.ResultLimit)
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if fc.Port != 0 {
		cfg.Port = fc.Port
	}
	if fc.TimeoutSeconds != 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.ResultLimit != 0 {
		cfg.ResultLimit = fc.ResultLimit
	}
	if fc.WebDir != "" {
		cfg.WebDir = fc.WebDir
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HAPPYSEARCH_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("HAPPYSEARCH_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HAPPYSEARCH_PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("HAPPYSEARCH_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HAPPYSEARCH_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("HAPPYSEARCH_RESULT_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HAPPYSEARCH_RESULT_LIMIT: %w", err)
		}
		cfg.ResultLimit = limit
	}
	if v := os.Getenv("HAPPYSEARCH_WEB_DIR"); v != "" {
		cfg.WebDir = v
	}
	return nil
}
