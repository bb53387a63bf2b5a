package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "settings.yaml", cfg.Settings.Path)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, "SCHEMAGEN_CACHE", cfg.Cache.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid memory backend",
			mutate: func(c *Config) {},
		},
		{
			name: "valid nats backend",
			mutate: func(c *Config) {
				c.Cache.Backend = CacheNATS
				c.Cache.URL = "nats://localhost:4222"
			},
		},
		{
			name: "nats backend without URL",
			mutate: func(c *Config) {
				c.Cache.Backend = CacheNATS
			},
			wantErr: "cache.url is required",
		},
		{
			name: "unknown backend",
			mutate: func(c *Config) {
				c.Cache.Backend = "redis"
			},
			wantErr: "cache.backend",
		},
		{
			name: "unknown log level",
			mutate: func(c *Config) {
				c.Log.Level = "verbose"
			},
			wantErr: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemagen.yaml")
	data := []byte(`
settings:
  path: /etc/schemagen/settings.yaml
  watch: true
cache:
  backend: nats
  url: nats://localhost:4222
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/schemagen/settings.yaml", cfg.Settings.Path)
	assert.True(t, cfg.Settings.Watch)
	assert.Equal(t, CacheNATS, cfg.Cache.Backend)
	assert.Equal(t, "nats://localhost:4222", cfg.Cache.URL)
	// Unset fields keep their defaults.
	assert.Equal(t, "SCHEMAGEN_CACHE", cfg.Cache.Bucket)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Cache: CacheConfig{Backend: CacheNATS, URL: "nats://cache:4222"},
		Log:   LogConfig{Level: "warn"},
	})

	assert.Equal(t, CacheNATS, base.Cache.Backend)
	assert.Equal(t, "nats://cache:4222", base.Cache.URL)
	assert.Equal(t, "SCHEMAGEN_CACHE", base.Cache.Bucket)
	assert.Equal(t, "warn", base.Log.Level)
	assert.Equal(t, "settings.yaml", base.Settings.Path)

	base.Merge(nil)
	assert.Equal(t, "warn", base.Log.Level)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Log.Level = "error"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", loaded.Log.Level)
}
