// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/homestead/internal/database"
	"github.com/tomtom215/homestead/internal/logging"
	"github.com/tomtom215/homestead/internal/models"
	"github.com/tomtom215/homestead/internal/recommend"
)

type recommendFlags struct {
	file       string
	location   string
	priceMin   float64
	priceMax   float64
	types      []string
	features   []string
	maxResults int
	seed       int64
	pretty     bool
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	f := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank listings for a buyer's criteria and print them as JSON",
		Long: `Run the recommendation scorer over a JSON catalog (--file) or over the
listing database (--db). Without --location the result is a random sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := loadCatalog(cmd.Context(), root, f.file)
			if err != nil {
				return err
			}

			cfg := recommend.DefaultConfig()
			cfg.Seed = f.seed
			engine, err := recommend.NewEngine(cfg, logging.Logger())
			if err != nil {
				return err
			}

			result := engine.Recommend(props, f.options(cmd))
			return writeJSON(cmd, result, f.pretty)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "JSON catalog to rank instead of the database")
	flags.StringVarP(&f.location, "location", "l", "", "City, state, ZIP or address fragment")
	flags.Float64Var(&f.priceMin, "price-min", 0, "Lower bound of the price window")
	flags.Float64Var(&f.priceMax, "price-max", 0, "Upper bound of the price window")
	flags.StringSliceVar(&f.types, "types", nil, "Acceptable property types (comma-separated)")
	flags.StringSliceVar(&f.features, "features", nil, "Preferred features (comma-separated)")
	flags.IntVarP(&f.maxResults, "max", "n", recommend.DefaultConfig().DefaultMaxResults, "Maximum number of listings")
	flags.Int64Var(&f.seed, "seed", 0, "Shuffle seed for the random branch (0 = time based)")
	flags.BoolVar(&f.pretty, "pretty", false, "Indent JSON output")
	return cmd
}

// options maps flags onto scorer options. A price window is set only when
// either bound was given; a missing upper bound is open-ended.
func (f *recommendFlags) options(cmd *cobra.Command) recommend.Options {
	opts := recommend.Options{
		Location:          f.location,
		PropertyTypes:     f.types,
		PreferredFeatures: f.features,
		MaxResults:        recommend.IntPtr(f.maxResults),
	}

	minSet := cmd.Flags().Changed("price-min")
	maxSet := cmd.Flags().Changed("price-max")
	if minSet || maxSet {
		pr := &recommend.PriceRange{Min: f.priceMin, Max: f.priceMax}
		if !maxSet {
			pr.Max = math.Inf(1)
		}
		opts.PriceRange = pr
	}
	return opts
}

func loadCatalog(ctx context.Context, root *rootOptions, file string) ([]models.Property, error) {
	if file != "" {
		return database.LoadPropertiesFromFile(file)
	}

	db, err := root.openDB()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing database")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	props, err := db.AllProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog from %s: %w", root.dbPath, err)
	}
	return props, nil
}

func writeJSON(cmd *cobra.Command, v interface{}, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
