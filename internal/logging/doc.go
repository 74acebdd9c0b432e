// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

// Package logging provides the zerolog-based logger shared by every sponsorcheck
// component.
//
// The package exposes a process-wide logger configured once from main:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("backend", "duckdb").Msg("Store ready")
//
// Request-scoped logging carries the request and correlation IDs that the API
// middleware stores in the request context:
//
//	logging.Ctx(r.Context()).Info().Str("query", q).Msg("Searching sponsor register")
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
//
// Libraries that only speak log/slog (the suture supervisor) are bridged through
// SlogHandler so every line ends up in the same zerolog stream.
package logging
