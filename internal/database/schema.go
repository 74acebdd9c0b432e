// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package database

import (
	"context"
	"fmt"
)

// Register columns, in the order they are selected and scanned.
const (
	colOrganisationName = "organisation_name"
	colTownCity         = "town_city"
	colCounty           = "county"
	colTypeRating       = "type_rating"
	colRoute            = "route"
)

var sponsorColumns = []string{colOrganisationName, colTownCity, colCounty, colTypeRating, colRoute}

// createTables creates the DuckDB register table and its route index.
func (db *DB) createTables(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			organisation_name TEXT NOT NULL,
			town_city TEXT,
			county TEXT,
			type_rating TEXT,
			route TEXT
		)`, db.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_route ON %s (route)`, indexSuffix(db.table), db.table),
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create sponsor schema: %w", err)
		}
	}
	return nil
}

// indexSuffix turns a possibly schema-qualified table name into an index name part.
func indexSuffix(table string) string {
	out := []byte(table)
	for i, c := range out {
		if c == '.' {
			out[i] = '_'
		}
	}
	return string(out)
}
