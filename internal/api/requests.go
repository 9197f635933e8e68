// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package api

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/homestead/internal/models"
	"github.com/tomtom215/homestead/internal/recommend"
)

// parseRecommendOptions maps recommendation query parameters onto
// recommend.Options. Malformed values are dropped rather than rejected, so
// they simply contribute nothing to the score.
func parseRecommendOptions(q url.Values) recommend.Options {
	opts := recommend.Options{
		PropertyTypes:     splitCSV(q.Get("propertyTypes")),
		PreferredFeatures: splitCSV(q.Get("features")),
		MaxResults:        parseMaxResults(q),
	}

	minPrice, hasMin := parseFloatParam(q, "priceMin")
	maxPrice, hasMax := parseFloatParam(q, "priceMax")
	if hasMin || hasMax {
		r := &recommend.PriceRange{Min: 0, Max: math.Inf(1)}
		if hasMin {
			r.Min = minPrice
		}
		if hasMax {
			r.Max = maxPrice
		}
		opts.PriceRange = r
	}
	return opts
}

// parseMaxResults returns nil when maxResults is absent or not an integer.
func parseMaxResults(q url.Values) *int {
	raw := strings.TrimSpace(q.Get("maxResults"))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatParam(q url.Values, key string) (float64, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// splitCSV splits a comma-separated parameter, dropping blank items.
func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parsePropertyFilter parses GET /api/properties parameters. Unlike the
// recommendation parameters these are strict: a malformed value is an error.
func parsePropertyFilter(q url.Values) (models.PropertyFilter, error) {
	filter := models.PropertyFilter{
		City:          strings.TrimSpace(q.Get("city")),
		State:         strings.TrimSpace(q.Get("state")),
		PropertyTypes: splitCSV(q.Get("propertyTypes")),
		Sort:          models.SortNewest,
	}

	for _, key := range []string{"priceMin", "priceMax"} {
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			continue
		}
		v, ok := parseFloatParam(q, key)
		if !ok || v < 0 {
			return filter, fmt.Errorf("%s must be a non-negative number", key)
		}
		if key == "priceMin" {
			filter.PriceMin = &v
		} else {
			filter.PriceMax = &v
		}
	}
	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return filter, fmt.Errorf("priceMin must not exceed priceMax")
	}

	var err error
	if filter.MinBedrooms, err = parseNonNegativeInt(q, "minBedrooms"); err != nil {
		return filter, err
	}
	if filter.Limit, err = parseNonNegativeInt(q, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = parseNonNegativeInt(q, "offset"); err != nil {
		return filter, err
	}

	switch sort := models.PropertySort(strings.TrimSpace(q.Get("sort"))); sort {
	case "":
	case models.SortNewest, models.SortPriceAsc, models.SortPriceDesc:
		filter.Sort = sort
	default:
		return filter, fmt.Errorf("sort must be one of: newest, price_asc, price_desc")
	}

	return filter, nil
}

func parseNonNegativeInt(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return n, nil
}
