// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PropertyCounter reports the size of the listing catalog.
type PropertyCounter interface {
	CountProperties(ctx context.Context) (int, error)
}

// CatalogStatsService periodically publishes the catalog size.
type CatalogStatsService struct {
	counter  PropertyCounter
	interval time.Duration
	publish  func(int)
	logger   zerolog.Logger
	name     string
}

// NewCatalogStatsService creates the service. publish receives every fresh
// count; a non-positive interval means one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogStatsService(counter PropertyCounter, interval time.Duration, publish func(int), logger zerolog.Logger) *CatalogStatsService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CatalogStatsService{
		counter:  counter,
		interval: interval,
		publish:  publish,
		logger:   logger.With().Str("service", "catalog-stats").Logger(),
		name:     "catalog-stats",
	}
}

// Serve implements suture.Service. Count failures are logged and retried on
// the next tick; Serve only returns when ctx is canceled.
func (s *CatalogStatsService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("catalog stats service starting")

	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog stats service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CatalogStatsService) refresh(ctx context.Context) {
	countCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	n, err := s.counter.CountProperties(countCtx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("failed to count catalog")
		}
		return
	}
	s.publish(n)
	s.logger.Debug().Int("properties", n).Msg("catalog size refreshed")
}

// String names the service in supervisor logs.
func (s *CatalogStatsService) String() string {
	return s.name
}
