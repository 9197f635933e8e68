// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/homestead/internal/config"
	"github.com/tomtom215/homestead/internal/database"
	"github.com/tomtom215/homestead/internal/logging"
)

const defaultMaxMemory = "1GB"

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dbPath   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "listingctl",
		Short: "Manage and query a Homestead listing database",
		Long: `listingctl seeds a Homestead DuckDB listing database from a JSON catalog
and runs the recommendation scorer offline, against either the database or a
catalog file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := logging.DefaultConfig()
			cfg.Level = opts.logLevel
			cfg.Format = "console"
			cfg.Output = cmd.ErrOrStderr()
			logging.Init(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "./data/homestead.duckdb", "Path to the DuckDB listing database")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newRecommendCmd(opts))
	return cmd
}

func (o *rootOptions) openDB() (*database.DB, error) {
	return database.New(&config.DatabaseConfig{
		Path:      o.dbPath,
		MaxMemory: defaultMaxMemory,
	})
}
