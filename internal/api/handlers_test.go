// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/models"
	"github.com/tomtom215/sponsorcheck/internal/sponsor"
)

// stubStore is a minimal in-memory sponsor.Store.
type stubStore struct {
	rows  []models.SponsorRecord
	count *int64
	err   error
}

func (s *stubStore) FindByName(_ context.Context, query string, limit int) ([]models.SponsorRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	q := strings.ToLower(query)
	var out []models.SponsorRecord
	for _, r := range s.rows {
		if strings.Contains(strings.ToLower(r.OrganisationName), q) {
			out = append(out, r)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *stubStore) RouteValues(_ context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	routes := make([]string, 0, len(s.rows))
	for _, r := range s.rows {
		routes = append(routes, r.Route)
	}
	return routes, nil
}

func (s *stubStore) CountSponsors(_ context.Context) (*int64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.count, nil
}

var testDataset = config.DatasetConfig{
	Source:           "UK Home Office Register of Licensed Sponsors",
	VerificationDate: "2025-06-01",
	Accuracy:         "100% - Official Government Data",
}

func acmeRows() []models.SponsorRecord {
	return []models.SponsorRecord{
		{OrganisationName: "Acme Software Ltd", TownCity: "Leeds", County: "West Yorkshire", TypeRating: "Worker (A rating)", Route: "Skilled Worker"},
		{OrganisationName: "ACME Software Ltd", TownCity: "Leeds", TypeRating: "Worker (A rating)", Route: "Global Business Mobility: Senior or Specialist Worker"},
		{OrganisationName: "Northwind Care Homes", TownCity: "Norwich", County: "Norfolk", TypeRating: "Worker (A rating)", Route: "Skilled Worker"},
	}
}

// setupTestServer builds the full router over a stub store.
func setupTestServer(t *testing.T, store *stubStore) http.Handler {
	t.Helper()
	handler := NewHandler(sponsor.NewService(store, testDataset), testDataset)
	return NewRouter(handler, []string{"*"}).SetupChi()
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
}

func TestCheckSponsorship_Match(t *testing.T) {
	h := setupTestServer(t, &stubStore{rows: acmeRows()})

	rec := doGet(t, h, "/api/check-sponsorship/acme")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var result models.SponsorSummaryResult
	decodeBody(t, rec, &result)

	if result.CompanySearch != "acme" || result.MatchesFound != 2 || !result.SponsorshipAvailable {
		t.Errorf("unexpected summary: %+v", result)
	}
	if len(result.OfficialData) != 2 || result.OfficialData[0].OfficialStatus != sponsor.StatusActiveLicensedSponsor {
		t.Errorf("official_data = %+v", result.OfficialData)
	}
	if result.SponsorshipInsights == nil {
		t.Fatal("sponsorship_insights missing")
	}
	if result.SponsorshipInsights.SponsorshipCapacity != sponsor.CapacityARated {
		t.Errorf("capacity = %q, want %q", result.SponsorshipInsights.SponsorshipCapacity, sponsor.CapacityARated)
	}
	wantCoverage := []string{"Leeds, West Yorkshire", "Leeds"}
	if strings.Join(result.SponsorshipInsights.GeographicCoverage, "|") != strings.Join(wantCoverage, "|") {
		t.Errorf("geographic_coverage = %v, want %v", result.SponsorshipInsights.GeographicCoverage, wantCoverage)
	}
	if result.DataSource != testDataset.Source || result.VerificationDate != testDataset.VerificationDate {
		t.Errorf("dataset labels = %q / %q", result.DataSource, result.VerificationDate)
	}
}

func TestCheckSponsorship_NoMatchIsSuccess(t *testing.T) {
	h := setupTestServer(t, &stubStore{rows: acmeRows()})

	rec := doGet(t, h, "/api/check-sponsorship/Zzzznotreal")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)

	if body["matches_found"] != float64(0) || body["sponsorship_available"] != false {
		t.Errorf("unexpected body: %v", body)
	}
	if _, ok := body["official_data"]; ok {
		t.Error("official_data should be omitted when nothing matched")
	}
	if _, ok := body["sponsorship_insights"]; ok {
		t.Error("sponsorship_insights should be omitted when nothing matched")
	}
	if body["message"] != sponsor.NoMatchMessage {
		t.Errorf("message = %v", body["message"])
	}
}

func TestCheckSponsorship_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"single character", "/api/check-sponsorship/a"},
		{"padded single character", "/api/check-sponsorship/%20a%20"},
		{"only whitespace", "/api/check-sponsorship/%20%20%20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{err: errors.New("store must not be called")}
			rec := doGet(t, setupTestServer(t, store), tt.path)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			var body models.ErrorResponse
			decodeBody(t, rec, &body)
			if body.Error != errInvalidCompanyName || body.Message == "" {
				t.Errorf("unexpected error body: %+v", body)
			}
		})
	}
}

func TestCheckSponsorship_StoreFailure(t *testing.T) {
	h := setupTestServer(t, &stubStore{err: errors.New(`relation "sponsors" does not exist`)})

	rec := doGet(t, h, "/api/check-sponsorship/acme")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	if body.Error != errStoreQuery {
		t.Errorf("error = %q, want %q", body.Error, errStoreQuery)
	}
	if body.Details != `relation "sponsors" does not exist` {
		t.Errorf("details = %q, want raw store message", body.Details)
	}
	if body.RequestID == "" || body.RequestID != rec.Header().Get("X-Request-ID") {
		t.Errorf("request_id = %q, header = %q", body.RequestID, rec.Header().Get("X-Request-ID"))
	}
}

func TestCheckSponsorship_EscapedName(t *testing.T) {
	rows := []models.SponsorRecord{{OrganisationName: "Smith/Jones Partnership LLP", TownCity: "York", Route: "Skilled Worker"}}
	h := setupTestServer(t, &stubStore{rows: rows})

	rec := doGet(t, h, "/api/check-sponsorship/smith%2Fjones")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.SponsorSummaryResult
	decodeBody(t, rec, &result)
	if result.CompanySearch != "smith/jones" || result.MatchesFound != 1 {
		t.Errorf("unexpected summary: %+v", result)
	}
}

func TestCompanyProfile_Match(t *testing.T) {
	h := setupTestServer(t, &stubStore{rows: acmeRows()})

	rec := doGet(t, h, "/api/company-profile/Acme%20Software")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.SponsorProfileResult
	decodeBody(t, rec, &result)

	if result.SearchQuery != "Acme Software" || result.OfficialStatus != sponsor.StatusVerifiedSponsor {
		t.Errorf("unexpected profile header: %+v", result)
	}
	if len(result.CompanyProfile) != 2 {
		t.Fatalf("company_profile has %d entries, want 2", len(result.CompanyProfile))
	}
	if result.CompanyProfile[0].LicenseDetails.Status != sponsor.StatusActive {
		t.Errorf("license status = %q", result.CompanyProfile[0].LicenseDetails.Status)
	}
	if result.SponsorshipCapabilities.OrganizationScale != sponsor.ScaleMultipleEntities {
		t.Errorf("organization_scale = %q", result.SponsorshipCapabilities.OrganizationScale)
	}
	if result.VerificationDetails.TotalEntries != 2 {
		t.Errorf("total_entries = %d, want 2", result.VerificationDetails.TotalEntries)
	}
}

func TestCompanyProfile_NotFound(t *testing.T) {
	h := setupTestServer(t, &stubStore{rows: acmeRows()})

	rec := doGet(t, h, "/api/company-profile/Zzzznotreal")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	if body.Error != errCompanyNotFound || body.SearchQuery != "Zzzznotreal" || body.Suggestion == "" {
		t.Errorf("unexpected 404 body: %+v", body)
	}
}

func TestCompanyProfile_StoreFailure(t *testing.T) {
	h := setupTestServer(t, &stubStore{err: errors.New("connection refused")})

	rec := doGet(t, h, "/api/company-profile/acme")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	if body.Details != "connection refused" {
		t.Errorf("details = %q", body.Details)
	}
}

func TestAvailableRoutes(t *testing.T) {
	h := setupTestServer(t, &stubStore{rows: acmeRows()})

	rec := doGet(t, h, "/api/available-routes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.RouteListResult
	decodeBody(t, rec, &result)

	want := []string{"Global Business Mobility: Senior or Specialist Worker", "Skilled Worker"}
	if strings.Join(result.Routes, "|") != strings.Join(want, "|") {
		t.Errorf("routes = %v, want %v", result.Routes, want)
	}
	if result.TotalRoutesAvailable != 2 {
		t.Errorf("total_routes_available = %d, want 2", result.TotalRoutesAvailable)
	}
	if result.DataFreshness != testDataset.VerificationDate {
		t.Errorf("data_freshness = %q", result.DataFreshness)
	}
}

func TestAvailableRoutes_StoreFailure(t *testing.T) {
	rec := doGet(t, setupTestServer(t, &stubStore{err: errors.New("timeout")}), "/api/available-routes")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	count := int64(3)
	rec := doGet(t, setupTestServer(t, &stubStore{count: &count}), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.HealthResult
	decodeBody(t, rec, &result)
	if result.Status != "healthy" || !result.DatabaseConnected || result.TotalCompanies != 3 {
		t.Errorf("unexpected health: %+v", result)
	}
	if result.LastVerified != testDataset.VerificationDate || result.Accuracy != testDataset.Accuracy {
		t.Errorf("dataset labels = %q / %q", result.LastVerified, result.Accuracy)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	rec := doGet(t, setupTestServer(t, &stubStore{err: errors.New("dial tcp: connection refused")}), "/health")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body models.UnhealthyResult
	decodeBody(t, rec, &body)
	if body.Status != "unhealthy" || body.Error != "dial tcp: connection refused" {
		t.Errorf("unexpected unhealthy body: %+v", body)
	}
}

func TestIndex(t *testing.T) {
	rec := doGet(t, setupTestServer(t, &stubStore{}), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var info models.ServiceInfo
	decodeBody(t, rec, &info)
	if info.Version != Version || info.DataSource != testDataset.Source {
		t.Errorf("unexpected service info: %+v", info)
	}
	if len(info.Endpoints) == 0 {
		t.Error("expected endpoints to be listed")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	if got := sanitizeLogValue("acme\nINFO forged"); got != `acme\x0aINFO forged` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}
