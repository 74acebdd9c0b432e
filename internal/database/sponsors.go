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

	"github.com/tomtom215/sponsorcheck/internal/database/query"
	"github.com/tomtom215/sponsorcheck/internal/metrics"
	"github.com/tomtom215/sponsorcheck/internal/models"
)

// FindByName returns rows whose organisation name contains name, ignoring
// case, in table order. limit <= 0 returns every match.
func (db *DB) FindByName(ctx context.Context, name string, limit int) ([]models.SponsorRecord, error) {
	start := time.Now()

	wb := query.NewWhereBuilder(db.dialect).AddContainsIgnoreCase(colOrganisationName, name)
	stmt, args := query.Select{
		Columns: sponsorColumns,
		Table:   db.table,
		Where:   wb,
		Limit:   limit,
	}.Build(db.dialect)

	records, err := db.querySponsors(ctx, stmt, args...)
	metrics.RecordStoreQuery(db.Backend(), "find_by_name", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to search sponsors: %w", err)
	}
	return records, nil
}

// RouteValues returns the route of every row where it is not null.
func (db *DB) RouteValues(ctx context.Context) ([]string, error) {
	start := time.Now()

	wb := query.NewWhereBuilder(db.dialect).AddNotNull(colRoute)
	stmt, args := query.Select{
		Columns: []string{colRoute},
		Table:   db.table,
		Where:   wb,
	}.Build(db.dialect)

	routes, err := db.queryStrings(ctx, stmt, args...)
	metrics.RecordStoreQuery(db.Backend(), "route_values", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// CountSponsors returns the number of rows in the register.
func (db *DB) CountSponsors(ctx context.Context) (*int64, error) {
	start := time.Now()

	var count int64
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+db.table).Scan(&count)
	metrics.RecordStoreQuery(db.Backend(), "count", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to count sponsors: %w", err)
	}
	return &count, nil
}

func (db *DB) querySponsors(ctx context.Context, stmt string, args ...interface{}) ([]models.SponsorRecord, error) {
	rows, err := db.conn.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	records := []models.SponsorRecord{}
	for rows.Next() {
		var name, town, county, typeRating, route sql.NullString
		if err := rows.Scan(&name, &town, &county, &typeRating, &route); err != nil {
			return nil, fmt.Errorf("failed to scan sponsor row: %w", err)
		}
		records = append(records, models.SponsorRecord{
			OrganisationName: name.String,
			TownCity:         town.String,
			County:           county.String,
			TypeRating:       typeRating.String,
			Route:            route.String,
		})
	}
	return records, rows.Err()
}

func (db *DB) queryStrings(ctx context.Context, stmt string, args ...interface{}) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	values := []string{}
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		if v.Valid {
			values = append(values, v.String)
		}
	}
	return values, rows.Err()
}
