// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package sponsor implements the lookup service over the UK Register of Licensed
Sponsors.

The Service is stateless: every operation issues one query against a Store,
reshapes the returned rows and derives its summary from exactly those rows.
Nothing is cached between requests.

Operations:

  - CheckSponsorship: case-insensitive substring search, at most 10 rows,
    with insights (routes, license types, up to 5 locations, capacity label)
  - CompanyProfile: the same search without a row cap; no match is ErrNotFound
  - AvailableRoutes: distinct visa routes, sorted
  - Health: register row count

Errors:

  - ErrInvalidInput: the search name is shorter than 2 characters after trimming
  - ErrNotFound: a profile lookup matched nothing
  - *StoreQueryError: the backend failed; its message is the backend's own
*/
package sponsor
