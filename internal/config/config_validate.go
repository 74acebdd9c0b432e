// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/sponsorcheck/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateStore(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateStore validates the settings of the selected backend only.
func (c *Config) validateStore() error {
	if c.Store.MonitorInterval < 0 {
		return fmt.Errorf("STORE_MONITOR_INTERVAL must be 0 (disabled) or positive")
	}

	switch c.Store.Backend {
	case BackendDuckDB:
		return c.validateDuckDB()
	case BackendOracle:
		return c.validateOracle()
	case BackendPostgREST:
		return c.validatePostgREST()
	default:
		return fmt.Errorf("STORE_BACKEND must be one of duckdb, oracle, postgrest, got: %q", c.Store.Backend)
	}
}

func (c *Config) validateDuckDB() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when STORE_BACKEND=duckdb")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be 0 (auto) or positive")
	}
	return validateIdentifier(c.Database.Table, "DUCKDB_TABLE")
}

func (c *Config) validateOracle() error {
	if c.Oracle.Host == "" {
		return fmt.Errorf("ORACLE_HOST is required when STORE_BACKEND=oracle")
	}
	if c.Oracle.Port < 1 || c.Oracle.Port > 65535 {
		return fmt.Errorf("ORACLE_PORT must be between 1 and 65535")
	}
	if c.Oracle.Service == "" {
		return fmt.Errorf("ORACLE_SERVICE is required when STORE_BACKEND=oracle")
	}
	if c.Oracle.Username == "" {
		return fmt.Errorf("ORACLE_USERNAME is required when STORE_BACKEND=oracle")
	}
	return validateIdentifier(c.Oracle.Table, "ORACLE_TABLE")
}

func (c *Config) validatePostgREST() error {
	if c.PostgREST.URL == "" {
		return fmt.Errorf("POSTGREST_URL is required when STORE_BACKEND=postgrest")
	}
	if err := validateServiceURL(c.PostgREST.URL, "POSTGREST_URL"); err != nil {
		return fmt.Errorf("POSTGREST_URL is invalid: %w", err)
	}
	if c.PostgREST.Table == "" {
		return fmt.Errorf("POSTGREST_TABLE is required when STORE_BACKEND=postgrest")
	}
	if c.PostgREST.Timeout <= 0 {
		return fmt.Errorf("POSTGREST_TIMEOUT must be positive")
	}

	cols := c.PostgREST.Columns
	for env, v := range map[string]string{
		"POSTGREST_NAME_COLUMN":        cols.Name,
		"POSTGREST_TOWN_COLUMN":        cols.Town,
		"POSTGREST_COUNTY_COLUMN":      cols.County,
		"POSTGREST_TYPE_RATING_COLUMN": cols.TypeRating,
		"POSTGREST_ROUTE_COLUMN":       cols.Route,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", env)
		}
	}
	return nil
}

func (c *Config) validateDataset() error {
	if c.Dataset.Source == "" {
		return fmt.Errorf("DATASET_SOURCE must not be empty")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got: %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %q", c.Logging.Format)
	}
}
