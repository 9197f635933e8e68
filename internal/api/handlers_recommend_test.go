// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/homestead/internal/models"
)

func TestRecommendByLocation_PriceWindowRanksFirst(t *testing.T) {
	srv := newTestServer(t, &memStore{items: milwaukeeCatalog()})

	rec := doRequest(t, srv, http.MethodGet,
		"/api/properties/recommendations/location/Milwaukee?priceMin=400000&priceMax=500000&maxResults=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	got := decodeBody[[]models.Property](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "mke-450", got[0].ID)
	// 300k and 600k both score 50; catalog order breaks the tie.
	assert.Equal(t, "mke-300", got[1].ID)
}

func TestRecommendByLocation_ScoresNeverLeak(t *testing.T) {
	srv := newTestServer(t, &memStore{items: milwaukeeCatalog()})

	rec := doRequest(t, srv, http.MethodGet, "/api/properties/recommendations/location/Milwaukee", "")
	require.Equal(t, http.StatusOK, rec.Code)

	raw := decodeBody[[]map[string]interface{}](t, rec)
	require.Len(t, raw, 3)
	for _, item := range raw {
		assert.NotContains(t, item, "score")
		assert.Contains(t, item, "squareFeet")
	}
}

func TestRecommendByLocation_TypesAndFeatures(t *testing.T) {
	catalog := milwaukeeCatalog()
	catalog[2].Features = []string{"garage", "pool", "fireplace"}
	srv := newTestServer(t, &memStore{items: catalog})

	rec := doRequest(t, srv, http.MethodGet,
		"/api/properties/recommendations/location/WI?propertyTypes=condo,%20townhouse&features=pool,fireplace&maxResults=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]models.Property](t, rec)
	require.Len(t, got, 1)
	// condo: 50+15+0 = 65; 600k house: 50+0+10 = 60.
	assert.Equal(t, "mke-450", got[0].ID)
}

func TestRecommendByLocation_EscapedLocation(t *testing.T) {
	catalog := append(milwaukeeCatalog()[:1], listing("msn-1", "Madison", "WI", "53703", 350000, "house"))
	srv := newTestServer(t, &memStore{items: []models.Property{catalog[1], catalog[0]}})

	rec := doRequest(t, srv, http.MethodGet,
		"/api/properties/recommendations/location/Milwaukee%2C%20WI?maxResults=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]models.Property](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "mke-300", got[0].ID)
}

func TestRecommendByLocation_ZipPrefix(t *testing.T) {
	catalog := []models.Property{
		listing("msn-1", "Madison", "WI", "53703", 350000, "house"),
		listing("mke-1", "Milwaukee", "WI", "53202", 350000, "house"),
	}
	srv := newTestServer(t, &memStore{items: catalog})

	// 53299 is not a substring of anything but shares mke-1's "532" prefix.
	rec := doRequest(t, srv, http.MethodGet, "/api/properties/recommendations/location/53299?maxResults=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]models.Property](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "mke-1", got[0].ID)
}

func TestRecommendByLocation_MaxResultsZeroIsEmptyArray(t *testing.T) {
	srv := newTestServer(t, &memStore{items: milwaukeeCatalog()})

	rec := doRequest(t, srv, http.MethodGet, "/api/properties/recommendations/location/Milwaukee?maxResults=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRecommendByLocation_MalformedParamsIgnored(t *testing.T) {
	srv := newTestServer(t, &memStore{items: milwaukeeCatalog()})

	rec := doRequest(t, srv, http.MethodGet,
		"/api/properties/recommendations/location/Milwaukee?priceMin=cheap&maxResults=lots", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]models.Property](t, rec)
	assert.Len(t, got, 3, "bad maxResults falls back to the default of 5")
}

func TestRecommendRandom(t *testing.T) {
	store := &memStore{items: milwaukeeCatalog()}
	srv := newTestServer(t, store)

	rec := doRequest(t, srv, http.MethodGet, "/api/properties/recommendations?maxResults=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]models.Property](t, rec)
	require.Len(t, got, 2)
	ids := map[string]bool{"mke-300": true, "mke-450": true, "mke-600": true}
	for _, p := range got {
		assert.True(t, ids[p.ID], "unexpected listing %s", p.ID)
	}
	assert.NotEqual(t, got[0].ID, got[1].ID)

	rec = doRequest(t, srv, http.MethodGet, "/api/properties/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Property](t, rec), 3)
}

func TestRecommendRandom_EmptyCatalog(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	rec := doRequest(t, srv, http.MethodGet, "/api/properties/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRecommend_CatalogFailure(t *testing.T) {
	srv := newTestServer(t, &memStore{items: milwaukeeCatalog(), allErr: errors.New("duckdb: connection lost")})

	for _, target := range []string{
		"/api/properties/recommendations",
		"/api/properties/recommendations/location/Milwaukee",
	} {
		rec := doRequest(t, srv, http.MethodGet, target, "")
		require.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.JSONEq(t, `{"message":"Failed to fetch recommendations"}`, rec.Body.String())
	}
}
