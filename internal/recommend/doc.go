// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

// Package recommend ranks property listings against a buyer's soft criteria.
//
// # Scoring
//
// When a location is given, every listing earns additive points:
//
//   - 50 when the location appears in the city, state, zip or full address
//   - 30 instead when the zip shares its first three characters with the location
//   - 20 when the price is inside the requested range
//   - 10 or 5 when the price misses the range by under 20% or 50% of half its width
//   - 15 when the property type is one of the requested types
//   - 5 per preferred feature the listing carries
//   - 5 when the listing was created within the recency window (30 days)
//
// Listings are stable-sorted by score, highest first, and truncated. Scores
// live only in an internal wrapper and are never returned.
//
// Without a location the engine returns a uniformly shuffled sample, which
// backs the "browse" recommendations on the landing page.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	top := engine.Recommend(catalog, recommend.Options{
//	    Location:   "Milwaukee",
//	    PriceRange: &recommend.PriceRange{Min: 400000, Max: 500000},
//	})
//
// # Thread Safety
//
// Engine is safe for concurrent use. The shared random source is guarded by a
// mutex; all other state is per call. Inputs are never mutated.
package recommend
