// Package config loads topicstore settings from an HCL file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	// DatabasePath is the topic-map SQLite file.
	DatabasePath string `hcl:"database_path"`

	// LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `hcl:"log_level,optional"`

	// MaxOpenConns bounds the read pool. Zero means the store default.
	MaxOpenConns int `hcl:"max_open_conns,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{DatabasePath: "topicmap.db"}
}

// Load decodes an HCL configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("load config %s: database_path is required", path)
	}
	return &cfg, nil
}

// Logger builds a structured logger at the configured level, writing to
// stderr so command output on stdout stays clean.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
