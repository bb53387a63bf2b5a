package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"gopkg.in/yaml.v3"

	"github.com/pressmark/schemagen/cache"
	"github.com/pressmark/schemagen/config"
	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/render"
	"github.com/pressmark/schemagen/settings"
)

type rootFlags struct {
	configPath   string
	settingsPath string
	logLevel     string
}

// app wires the renderer from process config and command-line flags.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	renderer *render.Renderer
	natsConn *nats.Conn
}

func newApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.settingsPath != "" {
		cfg.Settings.Path = flags.settingsPath
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	a := &app{cfg: cfg, log: logger}

	store := settings.NewFileStore(cfg.Settings.Path, logger)
	c, err := a.buildCache(ctx)
	if err != nil {
		return nil, err
	}

	a.renderer = render.NewRenderer(store, c, render.WithLogger(logger))
	return a, nil
}

// Close releases external connections.
func (a *app) Close() {
	if a.natsConn != nil {
		a.natsConn.Close()
	}
}

func (a *app) buildCache(ctx context.Context) (cache.Cache, error) {
	switch a.cfg.Cache.Backend {
	case config.CacheNATS:
		conn, err := nats.Connect(a.cfg.Cache.URL)
		if err != nil {
			return nil, fmt.Errorf("connect to NATS: %w", err)
		}
		js, err := jetstream.New(conn)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("create JetStream context: %w", err)
		}
		kv, err := cache.NewNATSKV(ctx, js, a.cfg.Cache.Bucket)
		if err != nil {
			conn.Close()
			return nil, err
		}
		a.natsConn = conn
		a.log.Debug("Using NATS cache backend",
			slog.String("url", a.cfg.Cache.URL), slog.String("bucket", a.cfg.Cache.Bucket))
		return kv, nil
	default:
		return cache.NewMemory(), nil
	}
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(nil).Load()
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// document is the YAML shape of a content input file.
type document struct {
	Items []*content.Item `yaml:"items"`
}

// loadDocument parses a content YAML document. A file with a single top-level
// item (no items list) is accepted too.
func loadDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content file: %w", err)
	}
	if len(doc.Items) == 0 {
		var item content.Item
		if err := yaml.Unmarshal(data, &item); err == nil && item.ID != 0 {
			doc.Items = append(doc.Items, &item)
		}
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("content file %s contains no items", path)
	}
	return &doc, nil
}
