// Package config carries host configuration for composing daybook-core
// repositories. Hosts are expected to build one kv.Store and one repository
// per collection in their composition root; nothing here is a global.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for a daybook-core host.
// Environment variables are parsed from the DAYBOOK_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// StoreDriver selects the kv backend: memory, file or sqlite.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"file"`

	// DataDir is where the file driver keeps per-collection JSON files and
	// where the sqlite driver derives its default database path.
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// SQLitePath overrides the database file location; empty derives
	// DataDir/daybook.db.
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	// Timezone names the calendar used for day boundaries and streaks,
	// e.g. "Europe/Berlin". Defaults to UTC so results are stable unless
	// the host opts in to local time.
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
}

// ResolveDefaults validates the driver choice and derives dependent paths.
func (c *Config) ResolveDefaults() error {
	allowed := map[string]bool{"memory": true, "file": true, "sqlite": true}
	if !allowed[c.StoreDriver] {
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	if c.StoreDriver == "sqlite" && c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "daybook.db")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("unsupported TIMEZONE: %s", c.Timezone)
	}
	return nil
}

// Location returns the configured calendar location. Call after
// ResolveDefaults; an invalid name falls back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// New creates a Config by parsing DAYBOOK_-prefixed environment variables,
// e.g. DAYBOOK_STORE_DRIVER, DAYBOOK_DATA_DIR.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DAYBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("store_driver", cfg.StoreDriver).
		Str("data_dir", cfg.DataDir).
		Str("timezone", cfg.Timezone).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config for tests: in-memory store, UTC calendar.
func NewForTesting() *Config {
	return &Config{
		Environment: EnvTesting,
		StoreDriver: "memory",
		DataDir:     "",
		Timezone:    "UTC",
	}
}

// IsTesting returns true if the environment is set to testing.
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
