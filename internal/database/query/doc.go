// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

// Package query provides SQL query building utilities for the database package.
//
// The same sponsor queries run against DuckDB and Oracle, which disagree on
// placeholder syntax, case-insensitive matching and row limiting. Queries are
// written once with "?" placeholders and a Dialect renders them:
//
//	wb := query.NewWhereBuilder(query.Oracle)
//	wb.AddContainsIgnoreCase("organisation_name", "acme")
//	sql, args := query.Select{
//	    Columns: []string{"organisation_name", "route"},
//	    Table:   "SPONSORS",
//	    Where:   wb,
//	    Limit:   10,
//	}.Build(query.Oracle)
//	// SELECT organisation_name, route FROM SPONSORS
//	// WHERE UPPER(organisation_name) LIKE UPPER(:1) FETCH FIRST 10 ROWS ONLY
//
// Column and table names are interpolated as-is; callers pass identifiers
// that were validated at configuration time.
package query
