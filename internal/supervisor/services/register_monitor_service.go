// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package services

import (
	"context"
	"time"

	"github.com/tomtom215/sponsorcheck/internal/logging"
	"github.com/tomtom215/sponsorcheck/internal/models"
)

// maxCheckTimeout bounds a single health query.
const maxCheckTimeout = 30 * time.Second

// HealthChecker runs the count-only health query. *sponsor.Service
// implements it and updates the register row gauge on success.
type HealthChecker interface {
	Health(ctx context.Context) (*models.HealthResult, error)
}

// RegisterMonitorService periodically runs the health query so the
// register size gauge and store metrics stay current without traffic.
type RegisterMonitorService struct {
	checker  HealthChecker
	interval time.Duration
	name     string

	// healthy is only touched by the Serve goroutine.
	healthy bool
}

// NewRegisterMonitorService creates a monitor that checks every interval.
func NewRegisterMonitorService(checker HealthChecker, interval time.Duration) *RegisterMonitorService {
	return &RegisterMonitorService{
		checker:  checker,
		interval: interval,
		name:     "register-monitor",
		healthy:  true,
	}
}

// Serve implements suture.Service. The first check runs immediately.
func (m *RegisterMonitorService) Serve(ctx context.Context) error {
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *RegisterMonitorService) check(ctx context.Context) {
	timeout := m.interval
	if timeout > maxCheckTimeout {
		timeout = maxCheckTimeout
	}
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	checkCtx = logging.ContextWithNewCorrelationID(checkCtx)
	logger := logging.Ctx(checkCtx).With().Str("component", m.name).Logger()

	result, err := m.checker.Health(checkCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if m.healthy {
			logger.Warn().Err(err).Msg("Sponsor register store unreachable")
		}
		m.healthy = false
		return
	}

	if !m.healthy {
		logger.Info().Int64("total_companies", result.TotalCompanies).Msg("Sponsor register store reachable again")
	} else {
		logger.Debug().Int64("total_companies", result.TotalCompanies).Msg("Sponsor register checked")
	}
	m.healthy = true
}

// String implements fmt.Stringer for logging.
func (m *RegisterMonitorService) String() string {
	return m.name
}
