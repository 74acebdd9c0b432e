// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package postgrest

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/logging"
	"github.com/tomtom215/sponsorcheck/internal/metrics"
	"github.com/tomtom215/sponsorcheck/internal/models"
	"github.com/tomtom215/sponsorcheck/internal/sponsor"
)

var _ sponsor.Store = (*CircuitBreakerClient)(nil)

// breakerName labels circuit breaker metrics and logs.
const breakerName = "postgrest-api"

// CircuitBreakerClient wraps Client with the circuit breaker pattern.
// While open, every call fails immediately with gobreaker.ErrOpenState.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewCircuitBreakerClient creates a PostgREST client with circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(cfg *config.PostgRESTConfig) *CircuitBreakerClient {
	return newCircuitBreakerClient(NewClient(cfg), 2*time.Minute)
}

func newCircuitBreakerClient(client *Client, openTimeout time.Duration) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     openTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening PostgREST circuit")
			}

			return shouldTrip
		},

		// A caller that went away says nothing about PostgREST health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] PostgREST state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   breakerName,
	}
}

// execute wraps a PostgREST call with circuit breaker protection
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] PostgREST request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// State returns the current circuit breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// FindByName runs Client.FindByName with circuit breaker protection.
func (cbc *CircuitBreakerClient) FindByName(ctx context.Context, name string, limit int) ([]models.SponsorRecord, error) {
	result, err := cbc.execute(func() (interface{}, error) {
		return cbc.client.FindByName(ctx, name, limit)
	})
	if err != nil {
		return nil, err
	}
	records, ok := result.([]models.SponsorRecord)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for FindByName")
	}
	return records, nil
}

// RouteValues runs Client.RouteValues with circuit breaker protection.
func (cbc *CircuitBreakerClient) RouteValues(ctx context.Context) ([]string, error) {
	result, err := cbc.execute(func() (interface{}, error) {
		return cbc.client.RouteValues(ctx)
	})
	if err != nil {
		return nil, err
	}
	routes, ok := result.([]string)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for RouteValues")
	}
	return routes, nil
}

// CountSponsors runs Client.CountSponsors with circuit breaker protection.
func (cbc *CircuitBreakerClient) CountSponsors(ctx context.Context) (*int64, error) {
	result, err := cbc.execute(func() (interface{}, error) {
		return cbc.client.CountSponsors(ctx)
	})
	if err != nil {
		return nil, err
	}
	count, ok := result.(*int64)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for CountSponsors")
	}
	return count, nil
}

// stateToFloat converts circuit breaker state to float for Prometheus metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
