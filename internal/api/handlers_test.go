// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/homestead/internal/database"
	"github.com/tomtom215/homestead/internal/models"
	"github.com/tomtom215/homestead/internal/recommend"
)

// memStore is an in-memory PropertyStore.
type memStore struct {
	mu      sync.Mutex
	items   []models.Property
	nextID  int
	allErr  error
	pingErr error
}

func (s *memStore) AllProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.allErr != nil {
		return nil, s.allErr
	}
	out := make([]models.Property, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memStore) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = fmt.Sprintf("p-%d", s.nextID)
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	s.items = append(s.items, p)
	return p, nil
}

func (s *memStore) GetProperty(ctx context.Context, id string) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, database.ErrPropertyNotFound
}

func (s *memStore) UpdateProperty(ctx context.Context, id string, p models.Property) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p.ID = id
			p.CreatedAt = s.items[i].CreatedAt
			p.UpdatedAt = time.Now().UTC()
			s.items[i] = p
			return p, nil
		}
	}
	return models.Property{}, database.ErrPropertyNotFound
}

func (s *memStore) DeleteProperty(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return database.ErrPropertyNotFound
}

func (s *memStore) ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []models.Property{}
	for _, p := range s.items {
		if filter.City == "" || strings.Contains(strings.ToLower(p.City), strings.ToLower(filter.City)) {
			matched = append(matched, p)
		}
	}
	total := len(matched)
	if filter.Offset >= total {
		return []models.Property{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (s *memStore) Ping(ctx context.Context) error {
	return s.pingErr
}

var listedAt = time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

func listing(id, city, state, zip string, price float64, propertyType string) models.Property {
	return models.Property{
		ID:           id,
		Street:       "100 Main St",
		City:         city,
		State:        state,
		Zip:          zip,
		Price:        price,
		Bedrooms:     3,
		Bathrooms:    2,
		SquareFeet:   1800,
		PropertyType: propertyType,
		Features:     []string{"garage"},
		CreatedAt:    listedAt,
		UpdatedAt:    listedAt,
	}
}

func milwaukeeCatalog() []models.Property {
	return []models.Property{
		listing("mke-300", "Milwaukee", "WI", "53202", 300000, "house"),
		listing("mke-450", "Milwaukee", "WI", "53202", 450000, "condo"),
		listing("mke-600", "Milwaukee", "WI", "53211", 600000, "house"),
	}
}

func newTestServer(t *testing.T, store *memStore) http.Handler {
	t.Helper()

	cfg := recommend.DefaultConfig()
	cfg.Seed = 42
	engine, err := recommend.NewEngine(cfg, zerolog.Nop())
	require.NoError(t, err)

	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		RateLimitDisabled:  true,
	})
	return NewRouter(NewHandler(store, nil, engine), mw).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
