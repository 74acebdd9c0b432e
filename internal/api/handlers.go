// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/logging"
	"github.com/tomtom215/sponsorcheck/internal/models"
)

// Version is reported by the capability document. Overridden at build time
// with -ldflags "-X github.com/tomtom215/sponsorcheck/internal/api.Version=...".
var Version = "1.0.0"

// SponsorService is the lookup surface the handlers depend on.
// *sponsor.Service implements it.
type SponsorService interface {
	CheckSponsorship(ctx context.Context, nameQuery string) (*models.SponsorSummaryResult, error)
	CompanyProfile(ctx context.Context, nameQuery string) (*models.SponsorProfileResult, error)
	AvailableRoutes(ctx context.Context) (*models.RouteListResult, error)
	Health(ctx context.Context) (*models.HealthResult, error)
}

// Handler serves the sponsor lookup endpoints.
type Handler struct {
	service   SponsorService
	dataset   config.DatasetConfig
	startTime time.Time
}

// NewHandler creates a handler backed by service. dataset supplies the
// provenance labels of the capability document.
func NewHandler(service SponsorService, dataset config.DatasetConfig) *Handler {
	return &Handler{
		service:   service,
		dataset:   dataset,
		startTime: time.Now(),
	}
}

// Index returns the service capability document
//
// @Summary Service capability document
// @Description Lists the available endpoints and the provenance of the sponsor register data
// @Tags Core
// @Produce json
// @Success 200 {object} models.ServiceInfo
// @Router / [get]
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.ServiceInfo{
		Service:     "UK Licensed Sponsor Lookup API",
		Version:     Version,
		Description: "Checks whether UK organisations hold a Home Office licence to sponsor skilled workers",
		Endpoints: []models.EndpointInfo{
			{Method: http.MethodGet, Path: "/health", Description: "Store connectivity and register size"},
			{Method: http.MethodGet, Path: "/api/check-sponsorship/{companyName}", Description: "Summary of up to 10 matching sponsors"},
			{Method: http.MethodGet, Path: "/api/company-profile/{companyName}", Description: "Every matching register entry with capabilities"},
			{Method: http.MethodGet, Path: "/api/available-routes", Description: "Distinct visa routes in the register"},
			{Method: http.MethodGet, Path: "/metrics", Description: "Prometheus metrics"},
		},
		DataSource:  h.dataset.Source,
		LastUpdated: h.dataset.VerificationDate,
	})
}

// Health handles health check requests
//
// @Summary Get service health status
// @Description Counts register rows to verify the store is reachable
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthResult
// @Failure 500 {object} models.UnhealthyResult
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Health(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Health check failed")
		respondJSON(w, http.StatusInternalServerError, &models.UnhealthyResult{
			Status: "unhealthy",
			Error:  err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CheckSponsorship handles the sponsor search summary
//
// @Summary Check whether a company is a licensed sponsor
// @Description Case-insensitive substring search on organisation name, capped at 10 rows
// @Tags Sponsors
// @Produce json
// @Param companyName path string true "Company name, at least 2 characters"
// @Success 200 {object} models.SponsorSummaryResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/check-sponsorship/{companyName} [get]
func (h *Handler) CheckSponsorship(w http.ResponseWriter, r *http.Request) {
	name := companyNameParam(r)

	result, err := h.service.CheckSponsorship(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, name, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CompanyProfile handles the full company profile lookup
//
// @Summary Get every register entry for a company
// @Description Unbounded case-insensitive substring search with aggregated capabilities
// @Tags Sponsors
// @Produce json
// @Param companyName path string true "Company name"
// @Success 200 {object} models.SponsorProfileResult
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/company-profile/{companyName} [get]
func (h *Handler) CompanyProfile(w http.ResponseWriter, r *http.Request) {
	name := companyNameParam(r)

	result, err := h.service.CompanyProfile(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, name, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// AvailableRoutes lists the distinct visa routes
//
// @Summary List visa routes
// @Description Distinct non-empty routes in the register, sorted ascending
// @Tags Sponsors
// @Produce json
// @Success 200 {object} models.RouteListResult
// @Failure 500 {object} models.ErrorResponse
// @Router /api/available-routes [get]
func (h *Handler) AvailableRoutes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AvailableRoutes(r.Context())
	if err != nil {
		respondServiceError(w, r, "", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
