// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

// Package config loads Homestead configuration.
//
// Sources are layered with Koanf v2, later layers winning:
//  1. Built-in defaults
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/homestead/config.yaml)
//  3. Environment variables
//
// Config is immutable after Load and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development or production
}

// Addr returns host:port for http.Server.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig configures the DuckDB listing store.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()

	// SeedFile is an optional JSON catalog loaded at startup. Listings whose
	// IDs already exist are left untouched.
	SeedFile string `koanf:"seed_file"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	DefaultMaxResults int           `koanf:"default_max_results"`
	MaxResultsCap     int           `koanf:"max_results_cap"` // 0 = uncapped
	RecencyWindow     time.Duration `koanf:"recency_window"`
	Seed              int64         `koanf:"seed"`
}

// CatalogConfig configures how handlers read the listing catalog.
type CatalogConfig struct {
	FetchTimeout       time.Duration `koanf:"fetch_timeout"`
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerOpenTimeout time.Duration `koanf:"breaker_open_timeout"`
	StatsInterval      time.Duration `koanf:"stats_interval"`
}

// SecurityConfig holds HTTP hardening settings. Authentication is handled
// upstream of this service.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
