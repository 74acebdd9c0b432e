// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package sponsor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/models"
)

var testDataset = config.DatasetConfig{
	Source:           "UK Home Office Register of Licensed Sponsors",
	VerificationDate: "2025-06-01",
	Accuracy:         "100% - Official Government Data",
}

func newTestService(store Store) *Service {
	return NewService(store, testDataset)
}

func TestCheckSponsorship_ShortQueryIsInvalid(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"", " ", "A", "  B  ", "\tZ\n"} {
		store := &fakeStore{err: errors.New("store must not be called")}
		_, err := newTestService(store).CheckSponsorship(context.Background(), q)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("CheckSponsorship(%q) error = %v, want ErrInvalidInput", q, err)
		}
		if store.calls != 0 {
			t.Errorf("CheckSponsorship(%q) queried the store", q)
		}
	}
}

func TestCheckSponsorship_AcmeScenario(t *testing.T) {
	t.Parallel()

	store := &fakeStore{rows: acmeRows()}
	res, err := newTestService(store).CheckSponsorship(context.Background(), "  Acme ")
	if err != nil {
		t.Fatalf("CheckSponsorship: %v", err)
	}

	if res.CompanySearch != "Acme" {
		t.Errorf("CompanySearch = %q, want trimmed Acme", res.CompanySearch)
	}
	if res.MatchesFound != 2 || !res.SponsorshipAvailable {
		t.Fatalf("MatchesFound = %d, SponsorshipAvailable = %v", res.MatchesFound, res.SponsorshipAvailable)
	}
	if store.lastLim != SearchLimit {
		t.Errorf("store limit = %d, want %d", store.lastLim, SearchLimit)
	}
	if res.SponsorshipInsights.SponsorshipCapacity != CapacityARated {
		t.Errorf("capacity = %q, want %q", res.SponsorshipInsights.SponsorshipCapacity, CapacityARated)
	}
	wantCoverage := []string{"Leeds, West Yorkshire", "Leeds"}
	if !slices.Equal(res.SponsorshipInsights.GeographicCoverage, wantCoverage) {
		t.Errorf("coverage = %v, want %v", res.SponsorshipInsights.GeographicCoverage, wantCoverage)
	}
	first := res.OfficialData[0]
	if first.Name != "Acme Ltd" || first.OfficialStatus != StatusActiveLicensedSponsor || first.Location != "Leeds, West Yorkshire" {
		t.Errorf("unexpected first match: %+v", first)
	}
	if res.DataSource != testDataset.Source || res.VerificationDate != testDataset.VerificationDate {
		t.Errorf("dataset labels not applied: %+v", res)
	}
}

func TestCheckSponsorship_NoMatchIsSuccess(t *testing.T) {
	t.Parallel()

	res, err := newTestService(&fakeStore{rows: acmeRows()}).CheckSponsorship(context.Background(), "Zzzznotreal")
	if err != nil {
		t.Fatalf("CheckSponsorship: %v", err)
	}
	if res.MatchesFound != 0 || res.SponsorshipAvailable {
		t.Errorf("expected negative result, got %+v", res)
	}
	if res.OfficialData != nil || res.SponsorshipInsights != nil {
		t.Errorf("expected no rows or insights, got %+v", res)
	}
	if res.Message == "" {
		t.Error("expected a no-match message")
	}
}

func TestCheckSponsorship_CapsRowsAndLocations(t *testing.T) {
	t.Parallel()

	rows := make([]models.SponsorRecord, 25)
	for i := range rows {
		rows[i] = models.SponsorRecord{OrganisationName: fmt.Sprintf("Globex %02d", i), TownCity: fmt.Sprintf("Town %d", i)}
	}

	res, err := newTestService(&fakeStore{rows: rows}).CheckSponsorship(context.Background(), "globex")
	if err != nil {
		t.Fatalf("CheckSponsorship: %v", err)
	}
	if res.MatchesFound != SearchLimit {
		t.Errorf("MatchesFound = %d, want %d", res.MatchesFound, SearchLimit)
	}
	if n := len(res.SponsorshipInsights.GeographicCoverage); n != 5 {
		t.Errorf("coverage length = %d, want 5", n)
	}
	if res.SponsorshipInsights.SponsorshipCapacity != CapacityMultipleEntities {
		t.Errorf("capacity = %q, want %q", res.SponsorshipInsights.SponsorshipCapacity, CapacityMultipleEntities)
	}
}

func TestCheckSponsorship_StoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New(`relation "sponsors" does not exist`)
	res, err := newTestService(&fakeStore{err: storeErr}).CheckSponsorship(context.Background(), "Acme")
	if res != nil {
		t.Errorf("expected no partial result, got %+v", res)
	}

	var sqe *StoreQueryError
	if !errors.As(err, &sqe) {
		t.Fatalf("expected *StoreQueryError, got %T", err)
	}
	if sqe.Error() != storeErr.Error() {
		t.Errorf("Error() = %q, want raw message %q", sqe.Error(), storeErr.Error())
	}
	if !errors.Is(err, storeErr) {
		t.Error("expected StoreQueryError to unwrap to the store error")
	}
}

func TestCheckSponsorship_Idempotent(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeStore{rows: acmeRows()})
	first, err := svc.CheckSponsorship(context.Background(), "Acme")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.CheckSponsorship(context.Background(), "Acme")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.OfficialData, second.OfficialData) {
		t.Errorf("official_data differs between identical queries")
	}
}

func TestCompanyProfile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&fakeStore{rows: acmeRows()}).CompanyProfile(context.Background(), "Zzzznotreal")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCompanyProfile_LargeOrganizationUncapped(t *testing.T) {
	t.Parallel()

	rows := make([]models.SponsorRecord, 7)
	for i := range rows {
		rows[i] = models.SponsorRecord{
			OrganisationName: "Initech Group",
			TownCity:         fmt.Sprintf("Branch %d", i),
			County:           "Surrey",
			TypeRating:       "Worker (A rating)",
			Route:            "Skilled Worker",
		}
	}
	store := &fakeStore{rows: rows}

	res, err := newTestService(store).CompanyProfile(context.Background(), "initech")
	if err != nil {
		t.Fatalf("CompanyProfile: %v", err)
	}
	if store.lastLim > 0 {
		t.Errorf("profile lookup must be unbounded, got limit %d", store.lastLim)
	}
	if res.SponsorshipCapabilities.OrganizationScale != ScaleLargeOrganization {
		t.Errorf("scale = %q, want %q", res.SponsorshipCapabilities.OrganizationScale, ScaleLargeOrganization)
	}
	if n := len(res.SponsorshipCapabilities.OfficeLocations); n != 7 {
		t.Errorf("office locations = %d, want 7 (uncapped)", n)
	}
	if len(res.CompanyProfile) != 7 || res.VerificationDetails.TotalEntries != 7 {
		t.Errorf("expected 7 profile entries, got %d", len(res.CompanyProfile))
	}
	entry := res.CompanyProfile[0]
	if entry.LicenseDetails.Status != StatusActive || entry.OfficeLocation != "Branch 0, Surrey" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestCompanyProfile_StoreError(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&fakeStore{err: errors.New("timeout")}).CompanyProfile(context.Background(), "Acme")
	var sqe *StoreQueryError
	if !errors.As(err, &sqe) || sqe.Error() != "timeout" {
		t.Fatalf("expected StoreQueryError(timeout), got %v", err)
	}
}

func TestAvailableRoutes_SortedDistinct(t *testing.T) {
	t.Parallel()

	store := &fakeStore{rows: []models.SponsorRecord{
		{Route: "Skilled Worker"},
		{Route: "Global Business Mobility: Senior or Specialist Worker"},
		{Route: ""},
		{Route: "Creative Worker"},
		{Route: "Skilled Worker"},
	}}

	res, err := newTestService(store).AvailableRoutes(context.Background())
	if err != nil {
		t.Fatalf("AvailableRoutes: %v", err)
	}

	want := []string{"Creative Worker", "Global Business Mobility: Senior or Specialist Worker", "Skilled Worker"}
	if !slices.Equal(res.Routes, want) {
		t.Errorf("Routes = %v, want %v", res.Routes, want)
	}
	if res.TotalRoutesAvailable != 3 {
		t.Errorf("TotalRoutesAvailable = %d, want 3", res.TotalRoutesAvailable)
	}
}

func TestAvailableRoutes_StoreError(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&fakeStore{err: errors.New("boom")}).AvailableRoutes(context.Background())
	var sqe *StoreQueryError
	if !errors.As(err, &sqe) {
		t.Fatalf("expected StoreQueryError, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	n := int64(123456)
	res, err := newTestService(&fakeStore{count: &n}).Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if res.Status != "healthy" || !res.DatabaseConnected || res.TotalCompanies != n {
		t.Errorf("unexpected health result: %+v", res)
	}

	res, err = newTestService(&fakeStore{}).Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if res.TotalCompanies != 0 {
		t.Errorf("nil count should report 0, got %d", res.TotalCompanies)
	}

	_, err = newTestService(&fakeStore{err: errors.New("unreachable")}).Health(context.Background())
	var sqe *StoreQueryError
	if !errors.As(err, &sqe) || sqe.Error() != "unreachable" {
		t.Errorf("expected StoreQueryError(unreachable), got %v", err)
	}
}
