// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package database

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/database/query"
	"github.com/tomtom215/sponsorcheck/internal/logging"
	"github.com/tomtom215/sponsorcheck/internal/metrics"
	"github.com/tomtom215/sponsorcheck/internal/models"
)

// Header names of the published Register of Licensed Sponsors CSV.
const (
	csvOrganisationName = "Organisation Name"
	csvTownCity         = "Town/City"
	csvCounty           = "County"
	csvTypeRating       = "Type & Rating"
	csvRoute            = "Route"
)

// seedIfEmpty loads the register CSV, or the sample rows, into an empty table.
// A non-empty table is left untouched.
func (db *DB) seedIfEmpty(ctx context.Context, cfg *config.DatabaseConfig) error {
	if cfg.SeedCSV == "" && !cfg.SeedSample {
		return nil
	}

	count, err := db.CountSponsors(ctx)
	if err != nil {
		return err
	}
	if *count > 0 {
		logging.Debug().Int64("rows", *count).Msg("Sponsor register already populated, skipping seed")
		return nil
	}

	if cfg.SeedCSV != "" {
		n, err := db.ImportCSV(ctx, cfg.SeedCSV)
		if err != nil {
			return err
		}
		logging.Info().Str("file", cfg.SeedCSV).Int64("rows", n).Msg("Imported sponsor register CSV")
		return nil
	}

	n, err := db.SeedSampleData(ctx)
	if err != nil {
		return err
	}
	logging.Info().Int("rows", n).Msg("Seeded sample sponsor register")
	return nil
}

// ImportCSV appends the rows of a Home Office register CSV to the table using
// DuckDB's CSV reader. Blank optional fields are stored as NULL.
func (db *DB) ImportCSV(ctx context.Context, path string) (int64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("register CSV unavailable: %w", err)
	}

	stmt := fmt.Sprintf(`INSERT INTO %s (%s)
		SELECT
			TRIM(%q),
			NULLIF(TRIM(%q), ''),
			NULLIF(TRIM(%q), ''),
			NULLIF(TRIM(%q), ''),
			NULLIF(TRIM(%q), '')
		FROM read_csv('%s', header = true, all_varchar = true)
		WHERE NULLIF(TRIM(%q), '') IS NOT NULL`,
		db.table, strings.Join(sponsorColumns, ", "),
		csvOrganisationName, csvTownCity, csvCounty, csvTypeRating, csvRoute,
		sqlStringLiteral(path),
		csvOrganisationName,
	)

	res, err := db.conn.ExecContext(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to import register CSV %s: %w", path, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read imported row count: %w", err)
	}
	metrics.RecordImport("csv", int(n))
	return n, nil
}

// sqlStringLiteral escapes s for use inside a single-quoted SQL literal.
func sqlStringLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// sampleSponsors is a small fictional register for local development.
var sampleSponsors = []models.SponsorRecord{
	{OrganisationName: "Acme Software Ltd", TownCity: "Leeds", County: "West Yorkshire", TypeRating: "Worker (A rating)", Route: "Skilled Worker"},
	{OrganisationName: "Acme Software Ltd", TownCity: "Manchester", County: "Greater Manchester", TypeRating: "Worker (A rating)", Route: "Global Business Mobility: Senior or Specialist Worker"},
	{OrganisationName: "Northwind Care Homes", TownCity: "Bristol", TypeRating: "Worker (A rating)", Route: "Skilled Worker"},
	{OrganisationName: "Riverside Orchards", County: "Kent", TypeRating: "Temporary Worker (A rating)", Route: "Seasonal Worker"},
	{OrganisationName: "Harbour Arts Collective", TownCity: "Glasgow", TypeRating: "Temporary Worker (B rating)", Route: "Creative Worker"},
	{OrganisationName: "Pennine Engineering Group", TownCity: "Sheffield", County: "South Yorkshire", TypeRating: "Worker (B rating)", Route: "Skilled Worker"},
	{OrganisationName: "St Aldhelm's Charity Trust", TownCity: "Salisbury", County: "Wiltshire", TypeRating: "Temporary Worker (A rating)", Route: "Charity Worker"},
}

// SeedSampleData inserts sampleSponsors in one transaction. It works on
// either dialect so integration tests can seed an Oracle register.
func (db *DB) SeedSampleData(ctx context.Context) (int, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	stmt, err := tx.PrepareContext(ctx, query.Rebind(db.dialect, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?)",
		db.table, strings.Join(sponsorColumns, ", "),
	)))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for _, s := range sampleSponsors {
		if _, err := stmt.ExecContext(ctx, s.OrganisationName,
			nullIfEmpty(s.TownCity), nullIfEmpty(s.County), nullIfEmpty(s.TypeRating), nullIfEmpty(s.Route)); err != nil {
			return 0, fmt.Errorf("failed to insert sample sponsor %q: %w", s.OrganisationName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sample sponsors: %w", err)
	}
	metrics.RecordImport("sample", len(sampleSponsors))
	return len(sampleSponsors), nil
}

// nullIfEmpty maps "" to SQL NULL.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
