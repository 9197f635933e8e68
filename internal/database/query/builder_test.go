// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package query

import (
	"testing"
)

func TestWhereBuilder_Empty(t *testing.T) {
	whereClause, args := NewWhereBuilder().Build()
	if whereClause != "1=1" {
		t.Errorf("Expected '1=1' for empty builder, got %q", whereClause)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestWhereBuilder_AddPriceRange(t *testing.T) {
	lo, hi := 300000.0, 500000.0

	tests := []struct {
		name     string
		min, max *float64
		expected string
		nargs    int
	}{
		{"both", &lo, &hi, "price >= ? AND price <= ?", 2},
		{"min only", &lo, nil, "price >= ?", 1},
		{"max only", nil, &hi, "price <= ?", 1},
		{"neither", nil, nil, "1=1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whereClause, args := NewWhereBuilder().AddPriceRange(tt.min, tt.max).Build()
			if whereClause != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, whereClause)
			}
			if len(args) != tt.nargs {
				t.Errorf("Expected %d args, got %d", tt.nargs, len(args))
			}
		})
	}
}

func TestWhereBuilder_AddPropertyTypes(t *testing.T) {
	whereClause, args := NewWhereBuilder().AddPropertyTypes([]string{"house", "condo"}).Build()

	expected := "property_type IN (?, ?)"
	if whereClause != expected {
		t.Errorf("Expected %q, got %q", expected, whereClause)
	}
	if len(args) != 2 || args[0] != "house" || args[1] != "condo" {
		t.Errorf("Unexpected args %v", args)
	}

	if whereClause, _ := NewWhereBuilder().AddPropertyTypes(nil).Build(); whereClause != "1=1" {
		t.Errorf("Expected nil types to be skipped, got %q", whereClause)
	}
}

func TestWhereBuilder_AddCityContains(t *testing.T) {
	whereClause, args := NewWhereBuilder().AddCityContains("  Milw_ ").Build()

	if whereClause != `lower(city) LIKE ? ESCAPE '\'` {
		t.Errorf("Unexpected clause %q", whereClause)
	}
	if args[0] != `%milw\_%` {
		t.Errorf("Expected escaped lowercase pattern, got %v", args[0])
	}

	if whereClause, _ := NewWhereBuilder().AddCityContains("   ").Build(); whereClause != "1=1" {
		t.Errorf("Expected blank city to be skipped, got %q", whereClause)
	}
}

func TestWhereBuilder_Chained(t *testing.T) {
	whereClause, args := NewWhereBuilder().
		AddState("wi").
		AddMinBedrooms(3).
		AddMinBedrooms(0).
		Build()
	expected := "upper(state) = ? AND bedrooms >= ?"
	if whereClause != expected {
		t.Errorf("Expected %q, got %q", expected, whereClause)
	}
	if args[0] != "WI" || args[1] != 3 {
		t.Errorf("Unexpected args %v", args)
	}
}
