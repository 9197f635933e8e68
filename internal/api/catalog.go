// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/homestead/internal/config"
	"github.com/tomtom215/homestead/internal/logging"
	"github.com/tomtom215/homestead/internal/metrics"
	"github.com/tomtom215/homestead/internal/models"
)

// ErrCatalogUnavailable wraps every failed catalog fetch.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogSource supplies the listings the recommender ranks.
type CatalogSource interface {
	AllProperties(ctx context.Context) ([]models.Property, error)
}

// BreakerCatalog guards a CatalogSource with a per-call timeout and a
// circuit breaker. While the breaker is open calls fail immediately.
type BreakerCatalog struct {
	source  CatalogSource
	cb      *gobreaker.CircuitBreaker[[]models.Property]
	timeout time.Duration
}

// NewBreakerCatalog wraps source. The breaker opens after
// cfg.BreakerMaxFailures consecutive failures and probes again after
// cfg.BreakerOpenTimeout.
func NewBreakerCatalog(source CatalogSource, cfg *config.CatalogConfig) *BreakerCatalog {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	metrics.SetCatalogBreakerState(stateToInt(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[[]models.Property](gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A client hanging up says nothing about the store.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Catalog circuit breaker state change")
			metrics.SetCatalogBreakerState(stateToInt(to))
		},
	})

	return &BreakerCatalog{
		source:  source,
		cb:      cb,
		timeout: cfg.FetchTimeout,
	}
}

// AllProperties fetches the catalog through the breaker.
func (c *BreakerCatalog) AllProperties(ctx context.Context) ([]models.Property, error) {
	props, err := c.cb.Execute(func() ([]models.Property, error) {
		fetchCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
		return c.source.AllProperties(fetchCtx)
	})
	if err != nil {
		metrics.RecordCatalogFetchError(fetchErrorReason(err))
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return props, nil
}

// State reports the breaker state.
func (c *BreakerCatalog) State() gobreaker.State {
	return c.cb.State()
}

func fetchErrorReason(err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
