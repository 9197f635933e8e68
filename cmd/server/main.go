// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/homestead/internal/api"
	"github.com/tomtom215/homestead/internal/config"
	"github.com/tomtom215/homestead/internal/database"
	"github.com/tomtom215/homestead/internal/logging"
	"github.com/tomtom215/homestead/internal/metrics"
	"github.com/tomtom215/homestead/internal/recommend"
	"github.com/tomtom215/homestead/internal/supervisor"
	"github.com/tomtom215/homestead/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Homestead")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedFile != "" {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
		inserted, err := db.SeedFromFile(seedCtx, cfg.Database.SeedFile)
		seedCancel()
		if err != nil {
			logging.Error().Err(err).Str("file", cfg.Database.SeedFile).Msg("Failed to seed catalog")
		} else {
			logging.Info().Int("inserted", inserted).Str("file", cfg.Database.SeedFile).Msg("Catalog seed applied")
		}
	}

	engine, err := recommend.NewEngine(recommendConfig(&cfg.Recommend), logging.Logger())
	if err != nil {
		logging.Error().Err(err).Msg("Invalid recommendation settings")
		return
	}

	catalog := api.NewBreakerCatalog(db, &cfg.Catalog)
	handler := api.NewHandler(db, catalog, engine)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog needs slog; the adapter routes it into zerolog.
	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.Timeout + 5*time.Second
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}

	tree.AddDataService(services.NewCatalogStatsService(db, cfg.Catalog.StatsInterval, metrics.SetCatalogSize, logging.WithComponent("catalog-stats")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Homestead stopped")
}

func recommendConfig(rc *config.RecommendConfig) *recommend.Config {
	cfg := recommend.DefaultConfig()
	if rc.DefaultMaxResults > 0 {
		cfg.DefaultMaxResults = rc.DefaultMaxResults
	}
	if rc.MaxResultsCap > 0 {
		cfg.MaxResultsCap = rc.MaxResultsCap
	}
	if rc.RecencyWindow > 0 {
		cfg.RecencyWindow = rc.RecencyWindow
	}
	cfg.Seed = rc.Seed
	return cfg
}
