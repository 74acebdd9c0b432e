// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package models

// SponsorSummaryResult is the response of GET /api/check-sponsorship/{companyName}.
//
// A search with no matches is still a successful response:
//
//	{
//	  "company_search": "Zzzznotreal",
//	  "matches_found": 0,
//	  "sponsorship_available": false,
//	  "message": "No licensed sponsor found matching this name",
//	  "data_source": "UK Home Office Register of Licensed Sponsors",
//	  ...
//	}
type SponsorSummaryResult struct {
	CompanySearch        string               `json:"company_search"`
	MatchesFound         int                  `json:"matches_found"`
	SponsorshipAvailable bool                 `json:"sponsorship_available"`
	Message              string               `json:"message,omitempty"`
	OfficialData         []SponsorMatch       `json:"official_data,omitempty"`
	SponsorshipInsights  *SponsorshipInsights `json:"sponsorship_insights,omitempty"`
	DataSource           string               `json:"data_source"`
	VerificationDate     string               `json:"verification_date"`
	Accuracy             string               `json:"accuracy"`
}

// SponsorMatch is one matched register row on the search path.
type SponsorMatch struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	LicenseType    string `json:"license_type"`
	Route          string `json:"route"`
	OfficialStatus string `json:"official_status"`
}

// SponsorshipInsights summarizes the rows of one search.
// GeographicCoverage holds at most five locations.
type SponsorshipInsights struct {
	RoutesAvailable     []string `json:"routes_available"`
	LicenseTypes        []string `json:"license_types"`
	GeographicCoverage  []string `json:"geographic_coverage"`
	SponsorshipCapacity string   `json:"sponsorship_capacity"`
}

// SponsorProfileResult is the response of GET /api/company-profile/{companyName}.
type SponsorProfileResult struct {
	SearchQuery             string                  `json:"search_query"`
	OfficialStatus          string                  `json:"official_status"`
	CompanyProfile          []ProfileEntry          `json:"company_profile"`
	SponsorshipCapabilities SponsorshipCapabilities `json:"sponsorship_capabilities"`
	VerificationDetails     VerificationDetails     `json:"verification_details"`
}

// ProfileEntry is one matched register row on the profile path.
type ProfileEntry struct {
	LegalName      string         `json:"legal_name"`
	OfficeLocation string         `json:"office_location"`
	LicenseDetails LicenseDetails `json:"license_details"`
}

// LicenseDetails describes the license held by a ProfileEntry.
type LicenseDetails struct {
	Type   string `json:"type"`
	Route  string `json:"route"`
	Status string `json:"status"`
}

// SponsorshipCapabilities summarizes every row of a profile lookup.
// OfficeLocations is not capped.
type SponsorshipCapabilities struct {
	VisaRoutes        []string `json:"visa_routes"`
	LicenseTypes      []string `json:"license_types"`
	OfficeLocations   []string `json:"office_locations"`
	OrganizationScale string   `json:"organization_scale"`
}

// VerificationDetails carries dataset provenance on the profile path.
type VerificationDetails struct {
	DataSource       string `json:"data_source"`
	VerificationDate string `json:"verification_date"`
	Accuracy         string `json:"accuracy"`
	TotalEntries     int    `json:"total_entries"`
}

// RouteListResult is the response of GET /api/available-routes.
type RouteListResult struct {
	TotalRoutesAvailable int      `json:"total_routes_available"`
	Routes               []string `json:"routes"`
	Source               string   `json:"source"`
	DataFreshness        string   `json:"data_freshness"`
}

// HealthResult is the response of a successful GET /health.
type HealthResult struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
	TotalCompanies    int64  `json:"total_companies"`
	DataSource        string `json:"data_source"`
	LastVerified      string `json:"last_verified"`
	Accuracy          string `json:"accuracy"`
}

// UnhealthyResult is the 500 body of GET /health.
type UnhealthyResult struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ErrorResponse is the body of every other error response.
type ErrorResponse struct {
	Error       string `json:"error"`
	Message     string `json:"message,omitempty"`
	Details     string `json:"details,omitempty"`
	SearchQuery string `json:"search_query,omitempty"`
	Suggestion  string `json:"suggestion,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

// ServiceInfo is the capability document served at GET /.
type ServiceInfo struct {
	Service     string         `json:"service"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []EndpointInfo `json:"endpoints"`
	DataSource  string         `json:"data_source"`
	LastUpdated string         `json:"last_updated"`
}

// EndpointInfo describes one route in ServiceInfo.
type EndpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}
