// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package sponsor

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/logging"
	"github.com/tomtom215/sponsorcheck/internal/metrics"
	"github.com/tomtom215/sponsorcheck/internal/models"
	"github.com/tomtom215/sponsorcheck/internal/validation"
)

const (
	// SearchLimit caps the rows returned by CheckSponsorship.
	SearchLimit = 10

	// Status strings attached to reshaped rows.
	StatusActiveLicensedSponsor = "Active Licensed Sponsor"
	StatusActive                = "Active"
	StatusVerifiedSponsor       = "Verified UK Licensed Sponsor"

	// NoMatchMessage accompanies a search with zero matches.
	NoMatchMessage = "No licensed sponsor found matching this name in the official register"
)

// Operation names used for logging and metrics.
const (
	opCheckSponsorship = "check_sponsorship"
	opCompanyProfile   = "company_profile"
	opAvailableRoutes  = "available_routes"
	opHealth           = "health"
)

// companyNameQuery is validated before the search path queries the store.
type companyNameQuery struct {
	Name string `label:"Company name" validate:"min=2"`
}

// Service answers sponsor register lookups. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	store   Store
	dataset config.DatasetConfig
}

// NewService creates a Service over store; dataset supplies the provenance
// labels echoed in responses.
func NewService(store Store, dataset config.DatasetConfig) *Service {
	return &Service{store: store, dataset: dataset}
}

// CheckSponsorship searches for up to SearchLimit sponsors whose name contains
// nameQuery. Zero matches is a successful result.
func (s *Service) CheckSponsorship(ctx context.Context, nameQuery string) (*models.SponsorSummaryResult, error) {
	query := companyNameQuery{Name: strings.TrimSpace(nameQuery)}
	if verr := validation.ValidateStruct(&query); verr != nil {
		metrics.RecordLookup(opCheckSponsorship, metrics.OutcomeInvalid)
		return nil, &InputError{Reason: verr.Error()}
	}

	logger := logging.Ctx(ctx)
	logger.Info().Str("query", query.Name).Msg("Searching sponsor register")

	start := time.Now()
	rows, err := s.store.FindByName(ctx, query.Name, SearchLimit)
	if err != nil {
		logger.Error().Err(err).Str("query", query.Name).Msg("Sponsor search failed")
		metrics.RecordLookup(opCheckSponsorship, metrics.OutcomeError)
		return nil, &StoreQueryError{Op: opCheckSponsorship, Err: err}
	}

	logger.Info().
		Str("query", query.Name).
		Int("matches", len(rows)).
		Dur("duration", time.Since(start)).
		Msg("Sponsor search completed")

	result := &models.SponsorSummaryResult{
		CompanySearch:    query.Name,
		MatchesFound:     len(rows),
		DataSource:       s.dataset.Source,
		VerificationDate: s.dataset.VerificationDate,
		Accuracy:         s.dataset.Accuracy,
	}

	if len(rows) == 0 {
		result.Message = NoMatchMessage
		metrics.RecordLookup(opCheckSponsorship, metrics.OutcomeNoMatch)
		return result, nil
	}

	result.SponsorshipAvailable = true
	result.OfficialData = make([]models.SponsorMatch, len(rows))
	for i, r := range rows {
		result.OfficialData[i] = models.SponsorMatch{
			Name:           r.OrganisationName,
			Location:       LocationString(r),
			LicenseType:    r.TypeRating,
			Route:          r.Route,
			OfficialStatus: StatusActiveLicensedSponsor,
		}
	}

	agg := summarize(rows, searchLocationCap)
	result.SponsorshipInsights = &models.SponsorshipInsights{
		RoutesAvailable:     agg.routes,
		LicenseTypes:        agg.licenseTypes,
		GeographicCoverage:  agg.locations,
		SponsorshipCapacity: capacityLabel(rows),
	}

	metrics.RecordLookup(opCheckSponsorship, metrics.OutcomeMatch)
	return result, nil
}

// CompanyProfile returns every register row whose name contains nameQuery.
// No match returns ErrNotFound.
func (s *Service) CompanyProfile(ctx context.Context, nameQuery string) (*models.SponsorProfileResult, error) {
	name := strings.TrimSpace(nameQuery)
	logger := logging.Ctx(ctx)
	logger.Info().Str("query", name).Msg("Fetching company profile")

	rows, err := s.store.FindByName(ctx, name, 0)
	if err != nil {
		logger.Error().Err(err).Str("query", name).Msg("Company profile query failed")
		metrics.RecordLookup(opCompanyProfile, metrics.OutcomeError)
		return nil, &StoreQueryError{Op: opCompanyProfile, Err: err}
	}

	if len(rows) == 0 {
		logger.Info().Str("query", name).Msg("Company profile not found")
		metrics.RecordLookup(opCompanyProfile, metrics.OutcomeNoMatch)
		return nil, ErrNotFound
	}

	profile := make([]models.ProfileEntry, len(rows))
	for i, r := range rows {
		profile[i] = models.ProfileEntry{
			LegalName:      r.OrganisationName,
			OfficeLocation: LocationString(r),
			LicenseDetails: models.LicenseDetails{
				Type:   r.TypeRating,
				Route:  r.Route,
				Status: StatusActive,
			},
		}
	}

	agg := summarize(rows, 0)
	metrics.RecordLookup(opCompanyProfile, metrics.OutcomeMatch)

	return &models.SponsorProfileResult{
		SearchQuery:    name,
		OfficialStatus: StatusVerifiedSponsor,
		CompanyProfile: profile,
		SponsorshipCapabilities: models.SponsorshipCapabilities{
			VisaRoutes:        agg.routes,
			LicenseTypes:      agg.licenseTypes,
			OfficeLocations:   agg.locations,
			OrganizationScale: organizationScale(rows),
		},
		VerificationDetails: models.VerificationDetails{
			DataSource:       s.dataset.Source,
			VerificationDate: s.dataset.VerificationDate,
			Accuracy:         s.dataset.Accuracy,
			TotalEntries:     len(rows),
		},
	}, nil
}

// AvailableRoutes lists the distinct non-empty routes in ascending order.
func (s *Service) AvailableRoutes(ctx context.Context) (*models.RouteListResult, error) {
	values, err := s.store.RouteValues(ctx)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Route listing failed")
		metrics.RecordLookup(opAvailableRoutes, metrics.OutcomeError)
		return nil, &StoreQueryError{Op: opAvailableRoutes, Err: err}
	}

	set := newOrderedSet()
	for _, v := range values {
		set.add(v)
	}
	routes := set.values()
	slices.Sort(routes)

	metrics.RecordLookup(opAvailableRoutes, metrics.OutcomeMatch)
	return &models.RouteListResult{
		TotalRoutesAvailable: len(routes),
		Routes:               routes,
		Source:               s.dataset.Source,
		DataFreshness:        s.dataset.VerificationDate,
	}, nil
}

// Health runs a count-only query. A count the backend leaves unset is
// reported as 0.
func (s *Service) Health(ctx context.Context) (*models.HealthResult, error) {
	count, err := s.store.CountSponsors(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Health check query failed")
		return nil, &StoreQueryError{Op: opHealth, Err: err}
	}

	var total int64
	if count != nil {
		total = *count
	}
	metrics.SetRegisterRows(total)

	return &models.HealthResult{
		Status:            "healthy",
		DatabaseConnected: true,
		TotalCompanies:    total,
		DataSource:        s.dataset.Source,
		LastVerified:      s.dataset.VerificationDate,
		Accuracy:          s.dataset.Accuracy,
	}, nil
}
