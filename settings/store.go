package settings

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Store provides read-through access to the configuration. Load returns a
// fresh snapshot on every call. There is no negative caching, so a build
// always sees the configuration as it currently is.
type Store interface {
	Load(ctx context.Context) (*Settings, error)
}

// FileStore reads settings from a YAML file on every Load.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore creates a file-backed store.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, log: logger}
}

// Load reads and parses the settings file. A missing file yields defaults.
func (s *FileStore) Load(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("settings file absent, using defaults", slog.String("path", s.path))
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}
	return cfg, nil
}

// Watch invokes fn whenever the settings file changes, until ctx is
// cancelled. Callers typically use this to flush render caches on
// configuration edits.
func (s *FileStore) Watch(ctx context.Context, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	if err := watcher.Add(s.path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch settings file: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					s.log.Debug("settings file changed", slog.String("path", s.path))
					fn()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("settings watcher error", slog.String("error", err.Error()))
			}
		}
	}()
	return nil
}

// MemoryStore serves a fixed in-memory snapshot. Used in tests and when the
// host deserializes configuration itself.
type MemoryStore struct {
	mu       sync.RWMutex
	settings *Settings
}

// NewMemoryStore creates a store serving the given settings. nil settings
// serve defaults.
func NewMemoryStore(s *Settings) *MemoryStore {
	if s == nil {
		s = DefaultSettings()
	}
	return &MemoryStore{settings: s}
}

// Load returns the current snapshot.
func (m *MemoryStore) Load(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

// Update replaces the snapshot.
func (m *MemoryStore) Update(s *Settings) {
	if s == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
}
