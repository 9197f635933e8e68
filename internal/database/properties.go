// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/homestead/internal/database/query"
	"github.com/tomtom215/homestead/internal/metrics"
	"github.com/tomtom215/homestead/internal/models"
)

// ErrPropertyNotFound is returned when no listing has the requested ID.
var ErrPropertyNotFound = errors.New("property not found")

// List window bounds for ListProperties.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

const propertiesTable = "properties"

const propertyColumns = `id, street, city, state, zip, price, bedrooms, bathrooms,
	square_feet, property_type, features, description, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	var features string
	if err := row.Scan(
		&p.ID, &p.Street, &p.City, &p.State, &p.Zip,
		&p.Price, &p.Bedrooms, &p.Bathrooms, &p.SquareFeet,
		&p.PropertyType, &features, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return models.Property{}, err
	}

	p.Features = []string{}
	if features != "" {
		if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
			return models.Property{}, fmt.Errorf("decode features for %s: %w", p.ID, err)
		}
	}
	return p, nil
}

func encodeFeatures(features []string) (string, error) {
	if features == nil {
		features = []string{}
	}
	b, err := json.Marshal(features)
	if err != nil {
		return "", fmt.Errorf("encode features: %w", err)
	}
	return string(b), nil
}

// ListWindow clamps a requested limit/offset to the supported range.
func ListWindow(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// CreateProperty inserts p under a fresh ID and returns the stored listing.
func (db *DB) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	now := db.now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Features == nil {
		p.Features = []string{}
	}

	features, err := encodeFeatures(p.Features)
	if err != nil {
		return models.Property{}, err
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, `INSERT INTO properties (`+propertyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Street, p.City, p.State, p.Zip,
		p.Price, p.Bedrooms, p.Bathrooms, p.SquareFeet,
		p.PropertyType, features, p.Description,
		p.CreatedAt, p.UpdatedAt,
	)
	metrics.RecordDBQuery("INSERT", propertiesTable, time.Since(start), err)
	if err != nil {
		return models.Property{}, fmt.Errorf("insert property: %w", err)
	}

	metrics.RecordPropertyMutation("create", 1)
	return p, nil
}

// GetProperty returns the listing with the given ID.
func (db *DB) GetProperty(ctx context.Context, id string) (models.Property, error) {
	start := time.Now()
	row := db.conn.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("SELECT", propertiesTable, time.Since(start), nil)
		return models.Property{}, ErrPropertyNotFound
	}
	metrics.RecordDBQuery("SELECT", propertiesTable, time.Since(start), err)
	if err != nil {
		return models.Property{}, fmt.Errorf("get property %s: %w", id, err)
	}
	return p, nil
}

// UpdateProperty replaces every editable field of the listing and bumps
// updated_at. ID and created_at are preserved.
func (db *DB) UpdateProperty(ctx context.Context, id string, p models.Property) (models.Property, error) {
	features, err := encodeFeatures(p.Features)
	if err != nil {
		return models.Property{}, err
	}

	start := time.Now()
	row := db.conn.QueryRowContext(ctx, `UPDATE properties SET
			street = ?, city = ?, state = ?, zip = ?, price = ?,
			bedrooms = ?, bathrooms = ?, square_feet = ?, property_type = ?,
			features = ?, description = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+propertyColumns,
		p.Street, p.City, p.State, p.Zip, p.Price,
		p.Bedrooms, p.Bathrooms, p.SquareFeet, p.PropertyType,
		features, p.Description, db.now(),
		id,
	)
	updated, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("UPDATE", propertiesTable, time.Since(start), nil)
		return models.Property{}, ErrPropertyNotFound
	}
	metrics.RecordDBQuery("UPDATE", propertiesTable, time.Since(start), err)
	if err != nil {
		return models.Property{}, fmt.Errorf("update property %s: %w", id, err)
	}

	metrics.RecordPropertyMutation("update", 1)
	return updated, nil
}

// DeleteProperty removes the listing with the given ID.
func (db *DB) DeleteProperty(ctx context.Context, id string) error {
	start := time.Now()
	result, err := db.conn.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	metrics.RecordDBQuery("DELETE", propertiesTable, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("delete property %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete property %s: %w", id, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	metrics.RecordPropertyMutation("delete", 1)
	return nil
}

// ListProperties returns one page of listings matching filter, plus the total
// number of matches.
func (db *DB) ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int, error) {
	wb := query.NewWhereBuilder().
		AddCityContains(filter.City).
		AddState(filter.State).
		AddPropertyTypes(filter.PropertyTypes).
		AddPriceRange(filter.PriceMin, filter.PriceMax).
		AddMinBedrooms(filter.MinBedrooms)
	whereClause, args := wb.Build()

	start := time.Now()
	var total int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties WHERE `+whereClause, args...).Scan(&total)
	metrics.RecordDBQuery("COUNT", propertiesTable, time.Since(start), err)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	limit, offset := ListWindow(filter.Limit, filter.Offset)
	pageArgs := make([]interface{}, 0, len(args)+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, limit, offset)

	items, err := db.queryProperties(ctx,
		fmt.Sprintf(`SELECT %s FROM properties WHERE %s ORDER BY %s LIMIT ? OFFSET ?`,
			propertyColumns, whereClause, orderBy(filter.Sort)),
		pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	return items, total, nil
}

func orderBy(sort models.PropertySort) string {
	switch sort {
	case models.SortPriceAsc:
		return "price ASC, id ASC"
	case models.SortPriceDesc:
		return "price DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// AllProperties returns the whole catalog in insertion order.
func (db *DB) AllProperties(ctx context.Context) ([]models.Property, error) {
	items, err := db.queryProperties(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return items, nil
}

// CountProperties returns the number of stored listings.
func (db *DB) CountProperties(ctx context.Context) (int, error) {
	start := time.Now()
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n)
	metrics.RecordDBQuery("COUNT", propertiesTable, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return n, nil
}

func (db *DB) queryProperties(ctx context.Context, q string, args ...interface{}) (items []models.Property, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("SELECT", propertiesTable, time.Since(start), err)
	}()

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	items = []models.Property{}
	for rows.Next() {
		p, scanErr := scanProperty(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
