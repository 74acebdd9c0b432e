// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package models defines the data structures shared by the sponsor register stores,
the lookup service and the HTTP API.

Key Components:

  - SponsorRecord: one row of the Home Office Register of Licensed Sponsors
  - SponsorSummaryResult: response of the check-sponsorship search
  - SponsorProfileResult: response of the company profile lookup
  - RouteListResult: distinct visa routes in the register
  - HealthResult / UnhealthyResult: liveness and row count probe
  - ErrorResponse: body of every 4xx/5xx response

All JSON field names are snake_case and stable; clients depend on them.
*/
package models
