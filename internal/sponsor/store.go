// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package sponsor

import (
	"context"

	"github.com/tomtom215/sponsorcheck/internal/models"
)

// Store is the read-only sponsor register the service queries.
// Implementations live in internal/database (DuckDB, Oracle) and
// internal/postgrest.
type Store interface {
	// FindByName returns rows whose organisation name contains query,
	// ignoring case, in the backend's natural order. limit <= 0 means no cap.
	FindByName(ctx context.Context, query string, limit int) ([]models.SponsorRecord, error)

	// RouteValues returns the route of every row where it is not null.
	// Values are neither deduplicated nor sorted.
	RouteValues(ctx context.Context) ([]string, error)

	// CountSponsors returns the number of rows, or nil when the backend
	// does not report a count.
	CountSponsors(ctx context.Context) (*int64, error)
}
