// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/sponsorcheck/config.yaml",
	"/etc/sponsorcheck/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Backend:         BackendDuckDB,
			MonitorInterval: 5 * time.Minute,
		},
		Database: DatabaseConfig{
			Path:       "/data/sponsorcheck.duckdb",
			MaxMemory:  "512MB",
			Threads:    0,
			Table:      "sponsors",
			SeedCSV:    "",
			SeedSample: false,
		},
		Oracle: OracleConfig{
			Port:  1521,
			Table: "SPONSORS",
		},
		PostgREST: PostgRESTConfig{
			Table:   "sponsors",
			Timeout: 30 * time.Second,
			Columns: ColumnConfig{
				Name:       "organisation_name",
				Town:       "town_city",
				County:     "county",
				TypeRating: "type_rating",
				Route:      "route",
			},
		},
		Dataset: DatasetConfig{
			Source:           "UK Home Office Register of Licensed Sponsors",
			VerificationDate: "2025-06-01",
			Accuracy:         "100% - Official Government Data",
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	// HTTP_PORT -> server.port, SUPABASE_URL -> postgrest.url
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"port":                  "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Store selection
	"store_backend":          "store.backend",
	"store_monitor_interval": "store.monitor_interval",

	// DuckDB
	"duckdb_path":        "database.path",
	"duckdb_max_memory":  "database.max_memory",
	"duckdb_threads":     "database.threads",
	"duckdb_table":       "database.table",
	"duckdb_seed_csv":    "database.seed_csv",
	"duckdb_seed_sample": "database.seed_sample",

	// Oracle
	"oracle_host":            "oracle.host",
	"oracle_port":            "oracle.port",
	"oracle_service":         "oracle.service",
	"oracle_username":        "oracle.username",
	"oracle_password":        "oracle.password",
	"oracle_wallet_location": "oracle.wallet_location",
	"oracle_table":           "oracle.table",

	// PostgREST (SUPABASE_* kept for hosted Supabase deployments)
	"postgrest_url":                "postgrest.url",
	"supabase_url":                 "postgrest.url",
	"postgrest_api_key":            "postgrest.api_key",
	"supabase_anon_key":            "postgrest.api_key",
	"postgrest_table":              "postgrest.table",
	"postgrest_timeout":            "postgrest.timeout",
	"postgrest_name_column":        "postgrest.columns.name",
	"postgrest_town_column":        "postgrest.columns.town",
	"postgrest_county_column":      "postgrest.columns.county",
	"postgrest_type_rating_column": "postgrest.columns.type_rating",
	"postgrest_route_column":       "postgrest.columns.route",

	// Dataset labels
	"dataset_source":            "dataset.source",
	"dataset_verification_date": "dataset.verification_date",
	"dataset_accuracy":          "dataset.accuracy",

	// Security
	"cors_origins": "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - SUPABASE_ANON_KEY -> postgrest.api_key
//
// Returns "" for unmapped variables so koanf skips them.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
