// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package config

import (
	"net"
	"strconv"
	"time"
)

// Store backends accepted by StoreConfig.Backend.
const (
	BackendDuckDB    = "duckdb"
	BackendOracle    = "oracle"
	BackendPostgREST = "postgrest"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file
//  3. Environment Variables: Override any setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Database  DatabaseConfig  `koanf:"database"`
	Oracle    OracleConfig    `koanf:"oracle"`
	PostgREST PostgRESTConfig `koanf:"postgrest"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Address returns the host:port the HTTP server listens on.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// StoreConfig selects the sponsor register backend.
type StoreConfig struct {
	Backend string `koanf:"backend"`

	// MonitorInterval is how often the register row gauge is refreshed.
	// Zero disables the monitor.
	MonitorInterval time.Duration `koanf:"monitor_interval"`
}

// DatabaseConfig holds the embedded DuckDB settings.
type DatabaseConfig struct {
	Path       string `koanf:"path"`
	MaxMemory  string `koanf:"max_memory"`
	Threads    int    `koanf:"threads"` // 0 = use runtime.NumCPU()
	Table      string `koanf:"table"`
	SeedCSV    string `koanf:"seed_csv"`    // Register CSV imported into an empty table
	SeedSample bool   `koanf:"seed_sample"` // Insert sample sponsors into an empty table (development)
}

// OracleConfig holds the connection settings for an Oracle-hosted register.
type OracleConfig struct {
	Host           string `koanf:"host"`
	Port           int    `koanf:"port"`
	Service        string `koanf:"service"`
	Username       string `koanf:"username"`
	Password       string `koanf:"password"`
	WalletLocation string `koanf:"wallet_location"` // Enables TLS with an Oracle wallet when set
	Table          string `koanf:"table"`
}

// PostgRESTConfig holds settings for a register exposed through PostgREST
// (including Supabase projects).
type PostgRESTConfig struct {
	URL     string        `koanf:"url"`
	APIKey  string        `koanf:"api_key"`
	Table   string        `koanf:"table"`
	Timeout time.Duration `koanf:"timeout"`
	Columns ColumnConfig  `koanf:"columns"`
}

// ColumnConfig maps sponsor attributes to the hosted table's column names.
type ColumnConfig struct {
	Name       string `koanf:"name"`
	Town       string `koanf:"town"`
	County     string `koanf:"county"`
	TypeRating string `koanf:"type_rating"`
	Route      string `koanf:"route"`
}

// DatasetConfig holds the provenance labels echoed in API responses.
type DatasetConfig struct {
	Source           string `koanf:"source"`
	VerificationDate string `koanf:"verification_date"`
	Accuracy         string `koanf:"accuracy"`
}

// SecurityConfig holds cross-origin settings
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
