// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	go_ora "github.com/sijms/go-ora/v2"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/database/query"
	"github.com/tomtom215/sponsorcheck/internal/logging"
)

// oraclePingTimeout bounds the connectivity check in NewOracle.
const oraclePingTimeout = 10 * time.Second

// oracleURL builds the go-ora connection URL. A wallet location switches the
// connection to TLS with the wallet's certificates.
func oracleURL(cfg *config.OracleConfig) string {
	options := map[string]string{}
	if cfg.WalletLocation != "" {
		options["SSL"] = "enable"
		options["WALLET"] = cfg.WalletLocation
	}
	return go_ora.BuildUrl(cfg.Host, cfg.Port, cfg.Service, cfg.Username, cfg.Password, options)
}

// NewOracle connects to an existing Oracle-hosted register. The table is
// never created or modified.
func NewOracle(cfg *config.OracleConfig) (*DB, error) {
	conn, err := sql.Open("oracle", oracleURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open oracle connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), oraclePingTimeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to oracle at %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Service, err)
	}

	logging.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("service", cfg.Service).
		Str("table", cfg.Table).
		Bool("wallet", cfg.WalletLocation != "").
		Msg("Oracle sponsor register connected")

	return &DB{
		conn:    conn,
		dialect: query.Oracle,
		table:   cfg.Table,
	}, nil
}
