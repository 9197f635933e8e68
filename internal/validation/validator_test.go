// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/homestead/internal/models"
)

func validInput() models.PropertyInput {
	return models.PropertyInput{
		Street:       "1200 N Water St",
		City:         "Milwaukee",
		State:        "WI",
		Zip:          "53202",
		Price:        450000,
		Bedrooms:     3,
		Bathrooms:    2.5,
		SquareFeet:   1850,
		PropertyType: "condo",
		Features:     []string{"garage", "balcony"},
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_ValidProperty(t *testing.T) {
	in := validInput()
	if err := ValidateStruct(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in.Zip = "53202-1234"
	in.Features = nil
	if err := ValidateStruct(&in); err != nil {
		t.Fatalf("ZIP+4 without features: unexpected error: %v", err)
	}
}

func TestValidateStruct_PropertyErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.PropertyInput)
		wantField string
		wantMsg   string
	}{
		{"missing city", func(p *models.PropertyInput) { p.City = "" }, "city", "city is required"},
		{"bad zip", func(p *models.PropertyInput) { p.Zip = "5320" }, "zip", "ZIP code"},
		{"zero price", func(p *models.PropertyInput) { p.Price = 0 }, "price", "price must be greater than 0"},
		{"unknown type", func(p *models.PropertyInput) { p.PropertyType = "castle" }, "propertyType", "must be one of"},
		{"negative bedrooms", func(p *models.PropertyInput) { p.Bedrooms = -1 }, "bedrooms", "at least 0"},
		{"empty feature", func(p *models.PropertyInput) { p.Features = []string{"garage", ""} }, "features[1]", "features[1] is required"},
		{"long street", func(p *models.PropertyInput) { p.Street = strings.Repeat("x", 201) }, "street", "200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			verr := ValidateStruct(&in)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if !strings.Contains(errs[0].Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", errs[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	in := models.PropertyInput{}
	verr := ValidateStruct(&in)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) < 5 {
		t.Errorf("expected an error per missing field, got %v", verr.Errors())
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("expected joined message, got %q", verr.Error())
	}
}
