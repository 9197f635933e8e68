// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package models

import (
	"strings"
	"time"
)

// Property type tags accepted by the listings API.
const (
	PropertyTypeHouse       = "house"
	PropertyTypeCondo       = "condo"
	PropertyTypeTownhouse   = "townhouse"
	PropertyTypeApartment   = "apartment"
	PropertyTypeMultiFamily = "multi_family"
	PropertyTypeLand        = "land"
)

// Property is a single listing as stored and served by the API.
type Property struct {
	ID           string    `json:"id"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Price        float64   `json:"price"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    float64   `json:"bathrooms"`
	SquareFeet   int       `json:"squareFeet"`
	PropertyType string    `json:"propertyType"`
	Features     []string  `json:"features"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullAddress renders the postal address as "street, city, state zip",
// leaving out empty parts and their separators.
func (p *Property) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{
		strings.TrimSpace(p.Street),
		strings.TrimSpace(p.City),
		strings.TrimSpace(strings.TrimSpace(p.State) + " " + strings.TrimSpace(p.Zip)),
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// HasFeature reports whether the listing carries the exact feature tag.
func (p *Property) HasFeature(feature string) bool {
	for _, f := range p.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// PropertyInput is the create/update payload for a listing.
type PropertyInput struct {
	Street       string   `json:"street" validate:"required,max=200"`
	City         string   `json:"city" validate:"required,max=100"`
	State        string   `json:"state" validate:"required,max=50"`
	Zip          string   `json:"zip" validate:"required,us_zip"`
	Price        float64  `json:"price" validate:"gt=0"`
	Bedrooms     int      `json:"bedrooms" validate:"min=0,max=100"`
	Bathrooms    float64  `json:"bathrooms" validate:"min=0,max=100"`
	SquareFeet   int      `json:"squareFeet" validate:"min=0"`
	PropertyType string   `json:"propertyType" validate:"required,oneof=house condo townhouse apartment multi_family land"`
	Features     []string `json:"features" validate:"max=50,dive,required,max=64"`
	Description  string   `json:"description" validate:"max=5000"`
}

// ToProperty copies the input into a Property without ID or timestamps.
func (in *PropertyInput) ToProperty() Property {
	features := make([]string, len(in.Features))
	copy(features, in.Features)
	return Property{
		Street:       strings.TrimSpace(in.Street),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		Zip:          strings.TrimSpace(in.Zip),
		Price:        in.Price,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		SquareFeet:   in.SquareFeet,
		PropertyType: in.PropertyType,
		Features:     features,
		Description:  in.Description,
	}
}

// PropertySort orders listing pages.
type PropertySort string

const (
	SortNewest    PropertySort = "newest"
	SortPriceAsc  PropertySort = "price_asc"
	SortPriceDesc PropertySort = "price_desc"
)

// PropertyFilter narrows GET /api/properties. Zero values mean "no filter".
type PropertyFilter struct {
	City          string
	State         string
	PropertyTypes []string
	PriceMin      *float64
	PriceMax      *float64
	MinBedrooms   int
	Sort          PropertySort
	Limit         int
	Offset        int
}

// PropertyPage is the listing endpoint's response envelope.
type PropertyPage struct {
	Items  []Property `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}
