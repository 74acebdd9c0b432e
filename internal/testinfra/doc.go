// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run an Oracle Database Free
// container so the Oracle store backend is exercised against a real server
// instead of only against the DuckDB dialect.
//
// # Oracle Container
//
//	func TestOracleStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    oracle, err := testinfra.NewOracleContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, oracle.Container)
//
//	    db, err := database.NewOracle(oracle.Config("SPONSORS"))
//	    // ...
//	}
//
// # CI Considerations
//
// Every file except this one carries the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// Tests are skipped when Docker is unavailable. The first run downloads the
// gvenzl/oracle-free image (about 1 GB for the slim variant).
package testinfra
