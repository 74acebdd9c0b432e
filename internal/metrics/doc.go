// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Sponsor register store:
  - sponsor_store_query_duration_seconds{backend, operation}
  - sponsor_store_query_errors_total{backend, operation, error_type}
  - sponsor_register_rows
  - sponsor_register_import_rows_total{source}

Lookups:
  - sponsor_lookups_total{operation, outcome}

Circuit breaker (PostgREST backend):
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}
*/
package metrics
