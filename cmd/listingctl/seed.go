// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/homestead/internal/database"
	"github.com/tomtom215/homestead/internal/logging"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	var (
		file    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a JSON catalog into the listing database",
		Long: `Load a JSON array of listings into the database. Listings whose ID already
exists are skipped, so seeding the same file twice is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}

			props, err := database.LoadPropertiesFromFile(file)
			if err != nil {
				return err
			}

			db, err := root.openDB()
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logging.Warn().Err(err).Msg("Error closing database")
				}
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			inserted, err := db.SeedProperties(ctx, props)
			if err != nil {
				return fmt.Errorf("seed %s: %w", file, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d listings into %s\n", inserted, len(props), root.dbPath)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON catalog to load")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Seed transaction timeout")
	return cmd
}
