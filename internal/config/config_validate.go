// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
	"test":        true,
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateRecommend,
		c.validateCatalog,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production, test")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultMaxResults < 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_MAX_RESULTS must be non-negative")
	}
	if r.MaxResultsCap < 0 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS_CAP must be non-negative")
	}
	if r.MaxResultsCap > 0 && r.MaxResultsCap < r.DefaultMaxResults {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS_CAP must be >= RECOMMEND_DEFAULT_MAX_RESULTS when set")
	}
	if r.RecencyWindow <= 0 {
		return fmt.Errorf("RECOMMEND_RECENCY_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.FetchTimeout <= 0 {
		return fmt.Errorf("CATALOG_FETCH_TIMEOUT must be positive")
	}
	if c.Catalog.BreakerMaxFailures == 0 {
		return fmt.Errorf("CATALOG_BREAKER_MAX_FAILURES must be at least 1")
	}
	if c.Catalog.BreakerOpenTimeout <= 0 {
		return fmt.Errorf("CATALOG_BREAKER_OPEN_TIMEOUT must be positive")
	}
	if c.Catalog.StatsInterval <= 0 {
		return fmt.Errorf("CATALOG_STATS_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain * in production")
			}
		}
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
