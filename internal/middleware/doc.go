// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - Request ID: UUID-based request tracking, echoed in X-Request-ID and
    attached to the logging context
  - Prometheus Metrics: request count, latency and in-flight gauge labelled
    by the matched chi route pattern

Both are plain func(http.Handler) http.Handler and plug into chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Route patterns ("/api/check-sponsorship/{companyName}") are used as the
endpoint label instead of the raw path so company names never become
Prometheus label values. Requests that match no route are recorded under
"unmatched".

See Also:

  - internal/api: router and handlers wrapped by this middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
