// Package config provides process configuration loading for schemagen.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Cache backend identifiers.
const (
	CacheMemory = "memory"
	CacheNATS   = "nats"
)

// Config represents the complete schemagen process configuration.
type Config struct {
	Settings SettingsConfig `yaml:"settings"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
}

// SettingsConfig locates the site settings document.
type SettingsConfig struct {
	// Path is the site settings YAML file.
	Path string `yaml:"path"`
	// Watch enables hot reload of the settings file.
	Watch bool `yaml:"watch"`
}

// CacheConfig configures the rendered-output cache.
type CacheConfig struct {
	// Backend selects the cache implementation ("memory" or "nats").
	Backend string `yaml:"backend"`
	// URL is the NATS server URL, required for the nats backend.
	URL string `yaml:"url"`
	// Bucket is the JetStream KV bucket name for the nats backend.
	Bucket string `yaml:"bucket"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			Path: "settings.yaml",
		},
		Cache: CacheConfig{
			Backend: CacheMemory,
			Bucket:  "SCHEMAGEN_CACHE",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheNATS:
		if c.Cache.URL == "" {
			return fmt.Errorf("cache.url is required for the nats backend")
		}
	default:
		return fmt.Errorf("cache.backend must be %q or %q", CacheMemory, CacheNATS)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Settings.Path != "" {
		c.Settings.Path = other.Settings.Path
	}
	if other.Settings.Watch {
		c.Settings.Watch = true
	}

	if other.Cache.Backend != "" {
		c.Cache.Backend = other.Cache.Backend
	}
	if other.Cache.URL != "" {
		c.Cache.URL = other.Cache.URL
	}
	if other.Cache.Bucket != "" {
		c.Cache.Bucket = other.Cache.Bucket
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
