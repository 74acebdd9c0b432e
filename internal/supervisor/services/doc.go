// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package services provides suture.Service wrappers for sponsorcheck components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Register Monitor (RegisterMonitorService):
  - Runs the health query on a fixed interval
  - Keeps the sponsor_register_rows gauge current between /health calls
  - Logs store outages and recoveries without restarting

# Error Semantics

Serve returns ctx.Err() after a requested shutdown. Any other error is a
failure and suture restarts the service with backoff. The register monitor
never fails on a store error; an unreachable store is reported through logs
and the store error metrics instead of restart churn.
*/
package services
