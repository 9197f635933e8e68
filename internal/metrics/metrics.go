// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendations
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by branch (random, scored)",
		},
		[]string{"branch"},
	)

	RecommendationResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of listings returned per recommendation request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent ranking the catalog, excluding the catalog fetch",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"branch"},
	)

	// Catalog
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_properties",
			Help: "Number of listings in the catalog",
		},
	)

	CatalogFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_errors_total",
			Help: "Catalog fetch failures by reason (breaker_open, timeout, error)",
		},
		[]string{"reason"},
	)

	// CatalogBreakerState is 0 closed, 1 half-open, 2 open.
	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_circuit_breaker_state",
			Help: "Catalog circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// Listings
	PropertyMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_mutations_total",
			Help: "Listing writes by operation (create, update, delete, seed)",
		},
		[]string{"operation"},
	)
)

// maxErrorLabelLen bounds label cardinality from free-form error strings.
const maxErrorLabelLen = 50

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > maxErrorLabelLen {
			errorType = errorType[:maxErrorLabelLen]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one served recommendation request.
func RecordRecommendation(branch string, returned int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(branch).Inc()
	RecommendationResultSize.Observe(float64(returned))
	RecommendationDuration.WithLabelValues(branch).Observe(duration.Seconds())
}

// RecordCatalogFetchError counts a failed catalog read.
func RecordCatalogFetchError(reason string) {
	CatalogFetchErrors.WithLabelValues(reason).Inc()
}

// SetCatalogBreakerState publishes the breaker state as a gauge value.
func SetCatalogBreakerState(state int) {
	CatalogBreakerState.Set(float64(state))
}

// SetCatalogSize publishes the current listing count.
func SetCatalogSize(n int) {
	CatalogSize.Set(float64(n))
}

// RecordPropertyMutation counts listing writes.
func RecordPropertyMutation(operation string, count int) {
	PropertyMutations.WithLabelValues(operation).Add(float64(count))
}
