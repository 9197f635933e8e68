// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package database

import (
	"context"
	"fmt"
	"time"
)

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range schemaQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func schemaQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS properties (
			id VARCHAR PRIMARY KEY,
			street VARCHAR NOT NULL,
			city VARCHAR NOT NULL,
			state VARCHAR NOT NULL,
			zip VARCHAR NOT NULL,
			price DOUBLE NOT NULL,
			bedrooms INTEGER NOT NULL DEFAULT 0,
			bathrooms DOUBLE NOT NULL DEFAULT 0,
			square_feet INTEGER NOT NULL DEFAULT 0,
			property_type VARCHAR NOT NULL,
			features VARCHAR NOT NULL DEFAULT '[]',
			description VARCHAR NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_price ON properties(price)`,
	}
}
