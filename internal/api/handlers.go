// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

// Package api serves the listings REST surface: property CRUD, filtered
// listing pages and the two recommendation endpoints.
package api

import (
	"context"
	"time"

	"github.com/tomtom215/homestead/internal/models"
	"github.com/tomtom215/homestead/internal/recommend"
)

// PropertyStore is the persistence the handlers need.
type PropertyStore interface {
	CatalogSource
	CreateProperty(ctx context.Context, p models.Property) (models.Property, error)
	GetProperty(ctx context.Context, id string) (models.Property, error)
	UpdateProperty(ctx context.Context, id string, p models.Property) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int, error)
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by every endpoint.
type Handler struct {
	store     PropertyStore
	catalog   CatalogSource
	engine    *recommend.Engine
	startTime time.Time
}

// NewHandler creates a Handler. A nil catalog reads straight from store.
func NewHandler(store PropertyStore, catalog CatalogSource, engine *recommend.Engine) *Handler {
	if catalog == nil {
		catalog = store
	}
	return &Handler{
		store:     store,
		catalog:   catalog,
		engine:    engine,
		startTime: time.Now(),
	}
}
