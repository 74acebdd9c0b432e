// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package database provides the SQL-backed sponsor register stores.

Two backends share one code path and differ only in driver and dialect:

  - DuckDB (default): an embedded database file managed by the service. On
    startup the sponsors table is created if missing and, when it is empty,
    optionally loaded from the Home Office register CSV or seeded with sample
    rows for development.
  - Oracle: an existing table reached through go-ora, optionally over TLS with
    an Oracle wallet. The service never writes to it.

Both satisfy sponsor.Store:

	db, err := database.New(&cfg.Database)
	svc := sponsor.NewService(db, cfg.Dataset)

# Schema

The register table has five text columns:

	organisation_name  NOT NULL
	town_city
	county
	type_rating
	route

# Query Semantics

Name lookups are case-insensitive containment matches (ILIKE '%q%' on DuckDB,
UPPER(..) LIKE UPPER('%q%') on Oracle) in the backend's natural row order.
Every query takes the caller's context so a cancelled request stops its query.
*/
package database
