// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package recommend

import (
	"github.com/tomtom215/homestead/internal/models"
)

// PriceRange is an inclusive price window.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Options are the buyer's soft criteria. Every field is optional.
type Options struct {
	// Location is matched against city, state, zip and the full address.
	// Empty (or whitespace) selects the random branch.
	Location string `json:"location,omitempty"`

	PriceRange        *PriceRange `json:"priceRange,omitempty"`
	PropertyTypes     []string    `json:"propertyTypes,omitempty"`
	PreferredFeatures []string    `json:"preferredFeatures,omitempty"`

	// MaxResults caps the result size. Nil means the configured default;
	// zero or negative yields an empty result.
	MaxResults *int `json:"maxResults,omitempty"`
}

// Branch names the path a request took through the engine.
type Branch string

const (
	BranchRandom Branch = "random"
	BranchScored Branch = "scored"
)

// BranchFor reports which branch Recommend takes for opts.
func BranchFor(opts *Options) Branch {
	if normalizeLocation(opts.Location) == "" {
		return BranchRandom
	}
	return BranchScored
}

// scoredProperty pairs a listing with its transient score.
type scoredProperty struct {
	property models.Property
	score    int
}

// IntPtr is a convenience for setting Options.MaxResults.
func IntPtr(v int) *int {
	return &v
}
