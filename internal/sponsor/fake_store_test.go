// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package sponsor

import (
	"context"
	"strings"
	"sync"

	"github.com/tomtom215/sponsorcheck/internal/models"
)

// fakeStore is an in-memory Store with the same containment semantics as the
// SQL backends.
type fakeStore struct {
	mu      sync.Mutex
	rows    []models.SponsorRecord
	count   *int64
	err     error
	calls   int
	lastLim int
}

func (f *fakeStore) FindByName(_ context.Context, query string, limit int) ([]models.SponsorRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastLim = limit
	if f.err != nil {
		return nil, f.err
	}

	q := strings.ToLower(query)
	var out []models.SponsorRecord
	for _, r := range f.rows {
		if strings.Contains(strings.ToLower(r.OrganisationName), q) {
			out = append(out, r)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) RouteValues(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, r := range f.rows {
		out = append(out, r.Route)
	}
	return out, nil
}

func (f *fakeStore) CountSponsors(_ context.Context) (*int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.count, nil
}

func acmeRows() []models.SponsorRecord {
	return []models.SponsorRecord{
		{OrganisationName: "Acme Ltd", TownCity: "Leeds", County: "West Yorkshire", TypeRating: "Worker (A rating)", Route: "Skilled Worker"},
		{OrganisationName: "Acme Corp", TownCity: "Leeds", County: "", TypeRating: "Worker (A rating)", Route: "Skilled Worker"},
		{OrganisationName: "Borealis Foods", TownCity: "Hull", TypeRating: "Worker (B rating)", Route: "Seasonal Worker"},
	}
}
