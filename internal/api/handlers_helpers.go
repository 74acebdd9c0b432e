// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/sponsorcheck/internal/logging"
	"github.com/tomtom215/sponsorcheck/internal/middleware"
	"github.com/tomtom215/sponsorcheck/internal/models"
	"github.com/tomtom215/sponsorcheck/internal/sponsor"
)

const (
	errInvalidCompanyName = "Invalid company name"
	errCompanyNotFound    = "Company not found in UK sponsor register"
	errStoreQuery         = "Database query failed"

	notFoundSuggestion = "Check the spelling or try a shorter part of the company name"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondServiceError maps sponsor.Service errors to status codes.
func respondServiceError(w http.ResponseWriter, r *http.Request, query string, err error) {
	switch {
	case errors.Is(err, sponsor.ErrInvalidInput):
		respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
			Error:   errInvalidCompanyName,
			Message: err.Error(),
		})

	case errors.Is(err, sponsor.ErrNotFound):
		respondJSON(w, http.StatusNotFound, &models.ErrorResponse{
			Error:       errCompanyNotFound,
			SearchQuery: strings.TrimSpace(query),
			Suggestion:  notFoundSuggestion,
		})

	default:
		logger := logging.Ctx(r.Context())
		var storeErr *sponsor.StoreQueryError
		if errors.As(err, &storeErr) {
			logger.Error().Err(storeErr.Err).Str("operation", storeErr.Op).Msg("Store query failed")
		} else {
			logger.Error().Err(err).Msg("Lookup failed")
		}

		respondJSON(w, http.StatusInternalServerError, &models.ErrorResponse{
			Error:     errStoreQuery,
			Details:   err.Error(),
			RequestID: middleware.GetRequestID(r.Context()),
		})
	}
}

// companyNameParam returns the decoded {companyName} path segment. chi
// matches against RawPath when the request path contains escapes such as
// %2F, leaving the parameter percent-encoded.
func companyNameParam(r *http.Request) string {
	name := chi.URLParam(r, "companyName")
	if r.URL.RawPath == "" {
		return name
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}
