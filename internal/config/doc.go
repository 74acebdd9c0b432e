// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package config provides centralized configuration management for sponsorcheck.

Configuration is loaded once at startup by Load and handed to every component
as an explicit struct; no package reads the environment on its own.

# Configuration Sources

Koanf v2 layers three sources, later layers overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - Optional YAML file (CONFIG_PATH, config.yaml, /etc/sponsorcheck/config.yaml)
  - Environment variables

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT / PORT: Listen port (default: 3000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Store selection:
  - STORE_BACKEND: duckdb, oracle or postgrest (default: duckdb)

DuckDB:
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS, DUCKDB_TABLE
  - DUCKDB_SEED_CSV: Home Office register CSV imported when the table is empty
  - DUCKDB_SEED_SAMPLE: insert a handful of sample sponsors when the table is empty

Oracle:
  - ORACLE_HOST, ORACLE_PORT, ORACLE_SERVICE, ORACLE_USERNAME, ORACLE_PASSWORD
  - ORACLE_WALLET_LOCATION, ORACLE_TABLE

PostgREST (Supabase-compatible):
  - POSTGREST_URL / SUPABASE_URL, POSTGREST_API_KEY / SUPABASE_ANON_KEY
  - POSTGREST_TABLE, POSTGREST_TIMEOUT
  - POSTGREST_NAME_COLUMN, POSTGREST_TOWN_COLUMN, POSTGREST_COUNTY_COLUMN,
    POSTGREST_TYPE_RATING_COLUMN, POSTGREST_ROUTE_COLUMN

Dataset labels:
  - DATASET_SOURCE, DATASET_VERIFICATION_DATE, DATASET_ACCURACY

Security and logging:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
