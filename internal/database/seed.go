// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/homestead/internal/logging"
	"github.com/tomtom215/homestead/internal/metrics"
	"github.com/tomtom215/homestead/internal/models"
)

// LoadPropertiesFromFile decodes a JSON array of listings.
func LoadPropertiesFromFile(path string) ([]models.Property, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied seed path
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var props []models.Property
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	for i := range props {
		p := &props[i]
		p.ID = strings.TrimSpace(p.ID)
		p.City = strings.TrimSpace(p.City)
		p.State = strings.TrimSpace(p.State)
		p.Zip = strings.TrimSpace(p.Zip)
		if p.Features == nil {
			p.Features = []string{}
		}
	}
	return props, nil
}

// SeedProperties inserts listings in a single transaction. Listings whose ID
// already exists are skipped. Missing IDs are generated and missing
// timestamps default to now. Returns the number of rows inserted.
func (db *DB) SeedProperties(ctx context.Context, props []models.Property) (int, error) {
	if len(props) == 0 {
		return 0, nil
	}

	start := time.Now()
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}

	inserted := 0
	now := db.now()
	for i := range props {
		p := props[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = p.CreatedAt
		}

		features, encErr := encodeFeatures(p.Features)
		if encErr != nil {
			_ = tx.Rollback()
			return 0, encErr
		}

		result, execErr := tx.ExecContext(ctx, `INSERT INTO properties (`+propertyColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Street, p.City, p.State, p.Zip,
			p.Price, p.Bedrooms, p.Bathrooms, p.SquareFeet,
			p.PropertyType, features, p.Description,
			p.CreatedAt, p.UpdatedAt,
		)
		if execErr != nil {
			_ = tx.Rollback()
			metrics.RecordDBQuery("INSERT", propertiesTable, time.Since(start), execErr)
			return 0, fmt.Errorf("seed property %s: %w", p.ID, execErr)
		}
		if n, raErr := result.RowsAffected(); raErr == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		metrics.RecordDBQuery("INSERT", propertiesTable, time.Since(start), err)
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	metrics.RecordDBQuery("INSERT", propertiesTable, time.Since(start), nil)
	metrics.RecordPropertyMutation("seed", inserted)

	logging.Info().
		Int("offered", len(props)).
		Int("inserted", inserted).
		Dur("duration", time.Since(start)).
		Msg("Seeded listing catalog")

	return inserted, nil
}

// SeedFromFile loads path and seeds its listings.
func (db *DB) SeedFromFile(ctx context.Context, path string) (int, error) {
	props, err := LoadPropertiesFromFile(path)
	if err != nil {
		return 0, err
	}
	return db.SeedProperties(ctx, props)
}
