// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/homestead/internal/logging"
	"github.com/tomtom215/homestead/internal/metrics"
	"github.com/tomtom215/homestead/internal/recommend"
)

const recommendFailedMessage = "Failed to fetch recommendations"

// RecommendByLocation handles
// GET /api/properties/recommendations/location/{location}.
func (h *Handler) RecommendByLocation(w http.ResponseWriter, r *http.Request) {
	opts := parseRecommendOptions(r.URL.Query())
	opts.Location = locationParam(r)
	h.recommend(w, r, opts)
}

// RecommendRandom handles GET /api/properties/recommendations. Only
// maxResults is honoured.
func (h *Handler) RecommendRandom(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, recommend.Options{MaxResults: parseMaxResults(r.URL.Query())})
}

//nolint:gocritic // hugeParam: opts is built per request
func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, opts recommend.Options) {
	catalog, err := h.catalog.AllProperties(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, recommendFailedMessage, err)
		return
	}

	start := time.Now()
	result := h.engine.Recommend(catalog, opts)
	branch := recommend.BranchFor(&opts)
	metrics.RecordRecommendation(string(branch), len(result), time.Since(start))

	logging.Ctx(r.Context()).Debug().
		Str("branch", string(branch)).
		Int("catalog", len(catalog)).
		Int("returned", len(result)).
		Msg("Recommendations served")

	respondJSON(w, http.StatusOK, result)
}

// locationParam returns the decoded {location} segment.
func locationParam(r *http.Request) string {
	raw := chi.URLParam(r, "location")
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
