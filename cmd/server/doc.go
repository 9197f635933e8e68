// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

/*
Package main is the entry point for the Homestead listings server.

Homestead stores property listings in DuckDB and serves them over a small REST
API, including buyer-facing recommendations ranked by location, price window,
property type, features and listing age.

# Application Architecture

	RootSupervisor ("homestead")
	├── DataSupervisor ("data-layer")
	│   └── Catalog stats refresher
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional config.yaml, environment
 2. Logging: zerolog, JSON by default
 3. Database: DuckDB listing store, seeded from SEED_FILE when set
 4. Recommendation engine and circuit-breaking catalog reader
 5. Supervisor tree with the HTTP server and stats refresher

# Endpoints

	GET    /api/health
	GET    /api/health/ready
	GET    /api/properties
	POST   /api/properties
	GET    /api/properties/{id}
	PUT    /api/properties/{id}
	DELETE /api/properties/{id}
	GET    /api/properties/recommendations
	GET    /api/properties/recommendations/location/{location}
	GET    /metrics

# Example Usage

	export DUCKDB_PATH=./data/homestead.duckdb
	export SEED_FILE=./testdata/listings.json
	export LOG_FORMAT=console
	./homestead

	curl 'localhost:5000/api/properties/recommendations/location/Milwaukee?priceMin=400000&priceMax=500000&maxResults=2'

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to HTTP_TIMEOUT, then the database is checkpointed
and closed.
*/
package main
