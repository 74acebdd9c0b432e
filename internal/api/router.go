// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/sponsorcheck/internal/middleware"
	"github.com/tomtom215/sponsorcheck/internal/models"
)

// Router wires handlers and middleware into a chi route table.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router serving handler with CORS restricted to corsOrigins.
func NewRouter(handler *Handler, corsOrigins []string) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddlewareFromOrigins(corsOrigins),
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", router.handler.Index)
	r.Get("/health", router.handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/check-sponsorship/{companyName}", router.handler.CheckSponsorship)
		r.Get("/company-profile/{companyName}", router.handler.CompanyProfile)
		r.Get("/available-routes", router.handler.AvailableRoutes)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, &models.ErrorResponse{
		Error:     "Not found",
		Message:   "No endpoint matches " + r.Method + " " + sanitizeLogValue(r.URL.Path),
		RequestID: middleware.GetRequestID(r.Context()),
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusMethodNotAllowed, &models.ErrorResponse{
		Error:     "Method not allowed",
		RequestID: middleware.GetRequestID(r.Context()),
	})
}
