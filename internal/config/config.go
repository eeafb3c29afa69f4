// Package config provides configuration management for stockroom.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultListenPort is the default HTTP port for the catalog service.
	DefaultListenPort = 8080

	// DefaultDBPath is the default SQLite database file.
	DefaultDBPath = "stockroom.db"

	// DefaultPageSize is the number of records returned when no limit is given.
	DefaultPageSize = 10

	// DefaultMaxPageSize caps the limit query parameter.
	DefaultMaxPageSize = 1000
)

// Config holds the application configuration.
type Config struct {
	// HTTP settings
	ListenPort int `yaml:"listen_port"`

	// Database settings
	DBPath   string `yaml:"db_path"`
	MaxConns int    `yaml:"max_conns"`

	// Pagination settings
	PageSize    int `yaml:"page_size"`
	MaxPageSize int `yaml:"max_page_size"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		ListenPort:  DefaultListenPort,
		DBPath:      DefaultDBPath,
		MaxConns:    4,
		PageSize:    DefaultPageSize,
		MaxPageSize: DefaultMaxPageSize,
		LogLevel:    "info",
	}
}

// Load reads configuration from the given YAML file, merging with defaults.
// A missing file is not an error; defaults plus environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.ListenPort <= 0 {
		cfg.ListenPort = DefaultListenPort
	}
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = 4
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = DefaultMaxPageSize
	}

	return cfg, nil
}

// applyEnv overrides config values from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("STOCKROOM_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.ListenPort = p
		}
	}
	if v := os.Getenv("STOCKROOM_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STOCKROOM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
