// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package postgrest implements sponsor.Store over a register table exposed
through PostgREST, including hosted Supabase projects.

Requests:

	GET  {url}/{table}?select=<cols>&<name>=ilike.*acme*&limit=10
	GET  {url}/{table}?select=<route>&<route>=not.is.null
	HEAD {url}/{table}?select=*            Prefer: count=exact

The API key is sent both as the apikey header and as a bearer token, which
is what Supabase expects and what a plain PostgREST with JWT auth accepts.
Column names are configurable because published register imports commonly
keep the CSV headers ("Organisation Name", "Town/City", ...).

CircuitBreakerClient wraps Client with sony/gobreaker so an unreachable
PostgREST fails fast instead of holding every request for the full timeout.
*/
package postgrest
