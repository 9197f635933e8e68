// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

// Package query builds parameterized WHERE clauses for the listing store.
package query

import (
	"fmt"
	"strings"
)

// WhereBuilder accumulates SQL conditions joined with AND.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddCityContains("milw").AddPriceRange(&lo, nil)
//	whereClause, args := wb.Build()
//	// lower(city) LIKE ? AND price >= ?
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw condition with its arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddCityContains matches cities containing the term, ignoring case.
// Blank terms are skipped.
func (wb *WhereBuilder) AddCityContains(term string) *WhereBuilder {
	term = strings.TrimSpace(term)
	if term == "" {
		return wb
	}
	return wb.AddClause("lower(city) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(term))+"%")
}

// AddState matches the state exactly, ignoring case.
func (wb *WhereBuilder) AddState(state string) *WhereBuilder {
	state = strings.TrimSpace(state)
	if state == "" {
		return wb
	}
	return wb.AddClause("upper(state) = ?", strings.ToUpper(state))
}

// AddPropertyTypes generates "property_type IN (?, ?, ...)".
// An empty slice is skipped.
func (wb *WhereBuilder) AddPropertyTypes(types []string) *WhereBuilder {
	return wb.addIn("property_type", types)
}

// AddPriceRange adds inclusive bounds. Nil bounds are skipped.
func (wb *WhereBuilder) AddPriceRange(minPrice, maxPrice *float64) *WhereBuilder {
	if minPrice != nil {
		wb.AddClause("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		wb.AddClause("price <= ?", *maxPrice)
	}
	return wb
}

// AddMinBedrooms requires at least n bedrooms. n <= 0 is skipped.
func (wb *WhereBuilder) AddMinBedrooms(n int) *WhereBuilder {
	if n > 0 {
		wb.AddClause("bedrooms >= ?", n)
	}
	return wb
}

func (wb *WhereBuilder) addIn(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		wb.args = append(wb.args, v)
	}
	wb.clauses = append(wb.clauses, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")))
	return wb
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Build joins the clauses with AND. Returns ("1=1", []) if no clauses were added.
//
//	whereClause, args := wb.Build()
//	query := fmt.Sprintf("SELECT * FROM properties WHERE %s", whereClause)
//	db.QueryContext(ctx, query, args...)
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}
