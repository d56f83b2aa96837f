package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Base URL of the pharmacy backend. All API paths are resolved against it.
	APIBaseURL string

	// Timeout for every backend round-trip.
	HTTPTimeout time.Duration
}

// fileConfig is the optional YAML overlay. Durations are strings in the file
// ("10s", "500ms") and parsed on load.
type fileConfig struct {
	APIBaseURL  string `yaml:"apiBaseUrl"`
	HTTPTimeout string `yaml:"httpTimeout"`
}

// Load builds the config from defaults, then an optional YAML file pointed at
// by STOREFRONT_CONFIG, then environment variables. Env always wins.
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL:  "http://localhost:8080",
		HTTPTimeout: 10 * time.Second,
	}

	if path := getenv("STOREFRONT_CONFIG", ""); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		if fc.APIBaseURL != "" {
			cfg.APIBaseURL = fc.APIBaseURL
		}
		cfg.HTTPTimeout = parseDuration(fc.HTTPTimeout, cfg.HTTPTimeout)
	}

	cfg.APIBaseURL = getenv("API_BASE_URL", cfg.APIBaseURL)
	cfg.HTTPTimeout = parseDuration(getenv("HTTP_TIMEOUT", ""), cfg.HTTPTimeout)

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
