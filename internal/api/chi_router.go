// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/homestead/internal/logging"
	"github.com/tomtom215/homestead/internal/middleware"
)

// Router wires handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi builds the HTTP handler for the whole service.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, outermost first.
	r.Use(middleware.Logger(logging.WithComponent("api")))
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(APISecurityHeaders())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, ErrorResponse{Message: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "Method not allowed"})
	})

	// Health is exempt from rate limiting so probes never trip it.
	r.Route("/api/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/properties", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		r.Get("/", router.handler.ListProperties)
		r.Post("/", router.handler.CreateProperty)

		// Static segments win over /{id}.
		r.Get("/recommendations", router.handler.RecommendRandom)
		r.Get("/recommendations/location/{location}", router.handler.RecommendByLocation)

		r.Get("/{id}", router.handler.GetProperty)
		r.Put("/{id}", router.handler.UpdateProperty)
		r.Delete("/{id}", router.handler.DeleteProperty)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
