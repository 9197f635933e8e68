// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package recommend

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homestead/internal/models"
)

// Engine ranks listings. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// now is swapped in tests to pin the recency window.
	now func() time.Time

	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for listing shuffles
	}, nil
}

// SetClock replaces the engine's time source.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Recommend returns up to MaxResults listings for opts. It never fails: absent
// or malformed criteria simply contribute nothing. The returned slice is
// always non-nil and never aliases properties.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (e *Engine) Recommend(properties []models.Property, opts Options) []models.Property {
	limit := e.limit(opts.MaxResults)

	if BranchFor(&opts) == BranchRandom {
		result := e.shuffled(properties, limit)
		e.logger.Debug().
			Str("branch", string(BranchRandom)).
			Int("candidates", len(properties)).
			Int("returned", len(result)).
			Msg("recommendation complete")
		return result
	}

	c := newCriteria(&opts, e.now(), e.config.RecencyWindow)

	scored := make([]scoredProperty, len(properties))
	for i := range properties {
		scored[i] = scoredProperty{property: properties[i], score: c.score(&properties[i])}
	}

	// Stable so equal scores keep catalog order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > len(scored) {
		limit = len(scored)
	}
	result := make([]models.Property, limit)
	for i := 0; i < limit; i++ {
		result[i] = cloneProperty(&scored[i].property)
	}

	e.logger.Debug().
		Str("branch", string(BranchScored)).
		Str("location", c.location).
		Int("candidates", len(properties)).
		Int("returned", len(result)).
		Msg("recommendation complete")

	return result
}

// limit resolves the effective result cap.
func (e *Engine) limit(requested *int) int {
	if requested == nil {
		return e.config.DefaultMaxResults
	}
	n := *requested
	if n < 0 {
		return 0
	}
	if e.config.MaxResultsCap > 0 && n > e.config.MaxResultsCap {
		return e.config.MaxResultsCap
	}
	return n
}

// shuffled returns the first limit listings of a uniformly shuffled copy.
func (e *Engine) shuffled(properties []models.Property, limit int) []models.Property {
	order := make([]int, len(properties))
	for i := range order {
		order[i] = i
	}

	e.rngMu.Lock()
	e.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	e.rngMu.Unlock()

	if limit > len(order) {
		limit = len(order)
	}
	result := make([]models.Property, limit)
	for i := 0; i < limit; i++ {
		result[i] = cloneProperty(&properties[order[i]])
	}
	return result
}

// cloneProperty detaches the features slice so callers cannot reach the
// catalog's backing arrays through the result.
func cloneProperty(p *models.Property) models.Property {
	out := *p
	if p.Features != nil {
		out.Features = make([]string, len(p.Features))
		copy(out.Features, p.Features)
	}
	return out
}
