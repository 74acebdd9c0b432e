// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package config

import (
	"fmt"
	"net/url"
	"regexp"
)

// identifierPattern matches table and column names that are safe to interpolate
// into SQL text. Dotted names allow schema-qualified tables.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// validateIdentifier checks a table name interpolated into SQL.
func validateIdentifier(name, fieldName string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%s must be a plain SQL identifier, got: %q", fieldName, name)
	}
	return nil
}

// validateServiceURL validates the base URL of a REST service.
// Validates: scheme (http/https), host present, no query params. A path is
// allowed because PostgREST is commonly mounted under one (e.g. /rest/v1).
func validateServiceURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
