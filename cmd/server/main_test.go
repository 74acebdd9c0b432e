// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package main

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/database"
	"github.com/tomtom215/sponsorcheck/internal/postgrest"
)

func TestBuildStore_DuckDB(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{Backend: config.BackendDuckDB},
		Database: config.DatabaseConfig{
			Path:       ":memory:",
			MaxMemory:  "256MB",
			Threads:    1,
			Table:      "sponsors",
			SeedSample: true,
		},
	}

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		t.Fatalf("buildStore: %v", err)
	}
	defer closeStore()

	if _, ok := store.(*database.DB); !ok {
		t.Fatalf("store = %T, want *database.DB", store)
	}

	count, err := store.CountSponsors(context.Background())
	if err != nil {
		t.Fatalf("CountSponsors: %v", err)
	}
	if count == nil || *count == 0 {
		t.Errorf("CountSponsors = %v, want seeded rows", count)
	}
}

func TestBuildStore_PostgREST(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{Backend: config.BackendPostgREST},
		PostgREST: config.PostgRESTConfig{
			URL:     "http://127.0.0.1:1/rest/v1",
			Table:   "sponsors",
			Timeout: time.Second,
		},
	}

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		t.Fatalf("buildStore: %v", err)
	}
	closeStore()

	if _, ok := store.(*postgrest.CircuitBreakerClient); !ok {
		t.Errorf("store = %T, want *postgrest.CircuitBreakerClient", store)
	}
}

func TestBuildStore_OracleUnreachable(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{Backend: config.BackendOracle},
		Oracle: config.OracleConfig{
			Host:     "127.0.0.1",
			Port:     1,
			Service:  "FREEPDB1",
			Username: "sponsor_ro",
			Password: "secret",
			Table:    "SPONSORS",
		},
	}

	if _, _, err := buildStore(cfg); err == nil {
		t.Error("buildStore expected error for unreachable oracle listener")
	}
}
