// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

// Package main is the entry point for the sponsorcheck server.
//
// Sponsorcheck answers whether a company appears on the UK Home Office
// Register of Licensed Sponsors (Workers and Temporary Workers). It is a
// read-only JSON API over one of three register backends.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Store: DuckDB (embedded, default), Oracle, or PostgREST/Supabase behind a circuit breaker
//  4. HTTP Server: chi router with CORS, request IDs, compression and Prometheus metrics
//  5. Supervisor Tree: suture tree running the HTTP server and the register monitor
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Backend selection:
//   - STORE_BACKEND=duckdb: DUCKDB_PATH, DUCKDB_TABLE, DUCKDB_SEED_CSV, DUCKDB_SEED_SAMPLE
//   - STORE_BACKEND=oracle: ORACLE_HOST, ORACLE_PORT, ORACLE_SERVICE, ORACLE_USERNAME, ORACLE_PASSWORD
//   - STORE_BACKEND=postgrest: POSTGREST_URL (or SUPABASE_URL), POSTGREST_API_KEY (or SUPABASE_ANON_KEY)
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (SERVER_SHUTDOWN_TIMEOUT)
//   - Closes the database connection
//
// # Example Usage
//
// Local development with the sample register:
//
//	export DUCKDB_PATH=:memory:
//	export DUCKDB_SEED_SAMPLE=true
//	export LOG_FORMAT=console
//	./sponsorcheck
//
// Importing the published register CSV on first start:
//
//	export DUCKDB_SEED_CSV=/data/register.csv
//	./sponsorcheck
//
// Supabase-hosted register:
//
//	export STORE_BACKEND=postgrest
//	export SUPABASE_URL=https://project.supabase.co/rest/v1
//	export SUPABASE_ANON_KEY=your-anon-key
//	./sponsorcheck
package main
