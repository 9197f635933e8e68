// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

// Command listingctl is the operator CLI for a Homestead listing database.
//
//	listingctl seed --db ./data/homestead.duckdb --file listings.json
//	listingctl recommend --file listings.json --location Milwaukee --price-min 400000 --price-max 500000
package main

import (
	"os"

	"github.com/tomtom215/homestead/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("listingctl failed")
		os.Exit(1)
	}
}
