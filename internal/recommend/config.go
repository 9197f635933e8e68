// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package recommend

import (
	"fmt"
	"time"
)

// Config contains the tunables of the recommendation engine. Point values are
// fixed; only limits and the random source are configurable.
type Config struct {
	// DefaultMaxResults applies when a request does not set MaxResults.
	DefaultMaxResults int `json:"default_max_results"`

	// MaxResultsCap bounds any requested MaxResults. Zero means no cap.
	MaxResultsCap int `json:"max_results_cap"`

	// RecencyWindow is how young a listing must be to earn the recency bonus.
	RecencyWindow time.Duration `json:"recency_window"`

	// Seed seeds the shuffle used when no location is given.
	// Zero seeds from the wall clock.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultMaxResults: 5,
		MaxResultsCap:     0,
		RecencyWindow:     30 * 24 * time.Hour,
		Seed:              0,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DefaultMaxResults < 0 {
		return fmt.Errorf("default_max_results must be non-negative, got %d", c.DefaultMaxResults)
	}
	if c.MaxResultsCap < 0 {
		return fmt.Errorf("max_results_cap must be non-negative, got %d", c.MaxResultsCap)
	}
	if c.MaxResultsCap > 0 && c.MaxResultsCap < c.DefaultMaxResults {
		return fmt.Errorf("max_results_cap must be >= default_max_results, got %d < %d",
			c.MaxResultsCap, c.DefaultMaxResults)
	}
	if c.RecencyWindow <= 0 {
		return fmt.Errorf("recency_window must be positive, got %v", c.RecencyWindow)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
