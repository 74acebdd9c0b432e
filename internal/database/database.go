// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/database/query"
	"github.com/tomtom215/sponsorcheck/internal/logging"
)

// initTimeout bounds schema creation and register seeding at startup.
const initTimeout = 5 * time.Minute

// DB is a SQL-backed sponsor register. It implements sponsor.Store.
type DB struct {
	conn    *sql.DB
	dialect query.Dialect
	table   string
}

// New opens (or creates) the DuckDB register described by cfg, creates the
// sponsors table when missing and seeds it when empty.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure parent directory exists for database file
	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:    conn,
		dialect: query.DuckDB,
		table:   cfg.Table,
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	if err := db.initialize(ctx, cfg); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Str("table", cfg.Table).
		Int("threads", numThreads).
		Msg("DuckDB sponsor register ready")

	return db, nil
}

// initialize creates the schema and seeds an empty register.
func (db *DB) initialize(ctx context.Context, cfg *config.DatabaseConfig) error {
	if err := db.createTables(ctx); err != nil {
		return err
	}
	return db.seedIfEmpty(ctx, cfg)
}

// Backend names the database flavour, used as a metrics label.
func (db *DB) Backend() string {
	return db.dialect.String()
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close closes the database connection. DuckDB registers are checkpointed
// first so the WAL is flushed into the database file.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	if db.dialect == query.DuckDB {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}

	return db.conn.Close()
}
