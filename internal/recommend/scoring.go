// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package recommend

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/tomtom215/homestead/internal/models"
)

// Point values per criterion.
const (
	pointsLocationMatch  = 50
	pointsZipPrefixMatch = 30
	pointsPriceInRange   = 20
	pointsPriceNear      = 10
	pointsPriceClose     = 5
	pointsPropertyType   = 15
	pointsPerFeature     = 5
	pointsRecent         = 5

	priceNearFraction  = 0.2
	priceCloseFraction = 0.5

	zipPrefixLen = 3
)

// criteria is Options pre-processed once per request.
type criteria struct {
	location      string // trimmed, as given
	locationLower string
	// locationWords is false for punctuation-only locations such as ", ".
	locationWords bool
	priceRange    *PriceRange
	types         map[string]struct{}
	features      []string
	now           time.Time
	recency       time.Duration
}

func newCriteria(opts *Options, now time.Time, recency time.Duration) criteria {
	c := criteria{
		location:   normalizeLocation(opts.Location),
		priceRange: opts.PriceRange,
		features:   opts.PreferredFeatures,
		now:        now,
		recency:    recency,
	}
	c.locationLower = strings.ToLower(c.location)
	c.locationWords = strings.IndexFunc(c.location, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
	if len(opts.PropertyTypes) > 0 {
		c.types = make(map[string]struct{}, len(opts.PropertyTypes))
		for _, t := range opts.PropertyTypes {
			c.types[t] = struct{}{}
		}
	}
	return c
}

func normalizeLocation(location string) string {
	return strings.TrimSpace(location)
}

// score sums the points p earns under c.
func (c *criteria) score(p *models.Property) int {
	return c.locationPoints(p) +
		c.pricePoints(p.Price) +
		c.typePoints(p.PropertyType) +
		c.featurePoints(p) +
		c.recencyPoints(p.CreatedAt)
}

func (c *criteria) locationPoints(p *models.Property) int {
	if !c.locationWords {
		return 0
	}
	for _, field := range []string{p.City, p.State, p.Zip, p.FullAddress()} {
		if strings.Contains(strings.ToLower(field), c.locationLower) {
			return pointsLocationMatch
		}
	}
	// Compares the zip against the location even when the location is a city
	// name; kept as-is so ranking stays compatible with existing clients.
	if p.Zip != "" && prefix(p.Zip, zipPrefixLen) == prefix(c.location, zipPrefixLen) {
		return pointsZipPrefixMatch
	}
	return 0
}

// pricePoints treats a negative or NaN price as missing. Zero is a real price.
func (c *criteria) pricePoints(price float64) int {
	r := c.priceRange
	if r == nil || price < 0 || math.IsNaN(price) {
		return 0
	}
	if price >= r.Min && price <= r.Max {
		return pointsPriceInRange
	}

	// Open-ended and inverted ranges earn no partial credit.
	halfRange := (r.Max - r.Min) / 2
	if halfRange <= 0 || math.IsNaN(halfRange) || math.IsInf(halfRange, 0) {
		return 0
	}
	distance := math.Min(math.Abs(price-r.Min), math.Abs(price-r.Max))
	pct := distance / halfRange
	switch {
	case pct < priceNearFraction:
		return pointsPriceNear
	case pct < priceCloseFraction:
		return pointsPriceClose
	default:
		return 0
	}
}

func (c *criteria) typePoints(propertyType string) int {
	if _, ok := c.types[propertyType]; ok {
		return pointsPropertyType
	}
	return 0
}

// featurePoints counts every preferred entry, duplicates included.
func (c *criteria) featurePoints(p *models.Property) int {
	points := 0
	for _, f := range c.features {
		if p.HasFeature(f) {
			points += pointsPerFeature
		}
	}
	return points
}

func (c *criteria) recencyPoints(createdAt time.Time) int {
	if createdAt.IsZero() {
		return 0
	}
	if c.now.Sub(createdAt) < c.recency {
		return pointsRecent
	}
	return 0
}

// prefix returns the first n runes of s, or all of s when shorter.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
