// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package api provides the HTTP REST API layer for sponsorcheck.

Endpoints:

	GET /                                      service capability document
	GET /health                                store connectivity and row count
	GET /api/check-sponsorship/{companyName}   capped search summary
	GET /api/company-profile/{companyName}     every matching register row
	GET /api/available-routes                  distinct visa routes
	GET /metrics                               Prometheus exposition

Key Components:

  - Router: chi route table and global middleware stack
  - Handler: thin adapters from HTTP to sponsor.Service
  - ChiMiddleware: go-chi/cors configured from config.SecurityConfig

Error Responses:

Service errors are mapped with errors.Is / errors.As:

	sponsor.ErrInvalidInput   400  {error, message}
	sponsor.ErrNotFound       404  {error, search_query, suggestion}
	anything else             500  {error, details}

Health failures use their own 500 body, {status: "unhealthy", error}.
Zero matches on check-sponsorship is a 200 with matches_found 0.

All responses are JSON encoded with goccy/go-json. No endpoint accepts a
request body and none require authentication.
*/
package api
