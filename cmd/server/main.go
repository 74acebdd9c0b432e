// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/sponsorcheck/internal/api"
	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/database"
	"github.com/tomtom215/sponsorcheck/internal/logging"
	"github.com/tomtom215/sponsorcheck/internal/postgrest"
	"github.com/tomtom215/sponsorcheck/internal/sponsor"
	"github.com/tomtom215/sponsorcheck/internal/supervisor"
	"github.com/tomtom215/sponsorcheck/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("backend", cfg.Store.Backend).
		Str("addr", cfg.Server.Address()).
		Msg("Starting sponsorcheck with supervisor tree")

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("Failed to initialize sponsor register")
	}
	defer closeStore()

	service := sponsor.NewService(store, cfg.Dataset)
	router := api.NewRouter(api.NewHandler(service, cfg.Dataset), cfg.Security.CORSOrigins)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Store.MonitorInterval > 0 {
		tree.AddStoreService(services.NewRegisterMonitorService(service, cfg.Store.MonitorInterval))
		logging.Info().Dur("interval", cfg.Store.MonitorInterval).Msg("Register monitor added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildStore opens the configured register backend. The returned close
// function is always safe to call.
func buildStore(cfg *config.Config) (sponsor.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendOracle:
		db, err := database.NewOracle(&cfg.Oracle)
		if err != nil {
			return nil, nil, err
		}
		return db, closeDB(db), nil

	case config.BackendPostgREST:
		client := postgrest.NewCircuitBreakerClient(&cfg.PostgREST)
		logging.Info().
			Str("url", cfg.PostgREST.URL).
			Str("table", cfg.PostgREST.Table).
			Bool("api_key", cfg.PostgREST.APIKey != "").
			Msg("PostgREST sponsor register configured")
		return client, func() {}, nil

	default:
		db, err := database.New(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		logging.Info().Str("path", cfg.Database.Path).Str("table", cfg.Database.Table).Msg("DuckDB sponsor register initialized")
		return db, closeDB(db), nil
	}
}

func closeDB(db *database.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}
}
