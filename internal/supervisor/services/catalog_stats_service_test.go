// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type stubCounter struct {
	calls atomic.Int32
	n     int
	err   error
}

func (s *stubCounter) CountProperties(ctx context.Context) (int, error) {
	s.calls.Add(1)
	return s.n, s.err
}

func TestCatalogStatsService_Interface(t *testing.T) {
	var _ suture.Service = (*CatalogStatsService)(nil)
}

func TestCatalogStatsService_PublishesOnStartAndTick(t *testing.T) {
	counter := &stubCounter{n: 42}
	published := make(chan int, 10)
	svc := NewCatalogStatsService(counter, 10*time.Millisecond, func(n int) { published <- n }, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case n := <-published:
			if n != 42 {
				t.Errorf("published %d, want 42", n)
			}
		case <-time.After(time.Second):
			t.Fatalf("no publish #%d", i+1)
		}
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCatalogStatsService_ErrorsDoNotStopService(t *testing.T) {
	counter := &stubCounter{err: errors.New("database is locked")}
	svc := NewCatalogStatsService(counter, 5*time.Millisecond, func(int) {
		t.Error("publish must not be called on error")
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
	if counter.calls.Load() < 2 {
		t.Errorf("expected repeated attempts, got %d", counter.calls.Load())
	}
}

func TestNewCatalogStatsService_DefaultInterval(t *testing.T) {
	svc := NewCatalogStatsService(&stubCounter{}, 0, func(int) {}, zerolog.Nop())
	if svc.interval != time.Minute {
		t.Errorf("expected default interval 1m, got %v", svc.interval)
	}
	if svc.String() != "catalog-stats" {
		t.Errorf("unexpected name %q", svc.String())
	}
}
