// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tomtom215/sponsorcheck/internal/config"
)

const (
	// DefaultOracleImage is the community Oracle Database Free image
	DefaultOracleImage = "gvenzl/oracle-free:23-slim-faststart"

	// DefaultOraclePort is the Oracle listener port
	DefaultOraclePort = "1521"

	// DefaultOracleService is the pluggable database created by the image
	DefaultOracleService = "FREEPDB1"

	// DefaultOracleUser and DefaultOraclePassword are the application schema
	// credentials the image creates on first start.
	DefaultOracleUser     = "sponsorcheck"
	DefaultOraclePassword = "sponsorcheck_test"
)

// OracleContainer represents a running Oracle Database Free container.
type OracleContainer struct {
	testcontainers.Container
	Host     string
	Port     int
	Service  string
	Username string
	Password string
}

// OracleOption configures the Oracle container.
type OracleOption func(*oracleConfig)

type oracleConfig struct {
	image        string
	startTimeout time.Duration
}

// WithOracleImage sets a custom Oracle Docker image.
func WithOracleImage(image string) OracleOption {
	return func(c *oracleConfig) {
		c.image = image
	}
}

// WithOracleStartTimeout sets the timeout for waiting for the database to open.
func WithOracleStartTimeout(timeout time.Duration) OracleOption {
	return func(c *oracleConfig) {
		c.startTimeout = timeout
	}
}

// NewOracleContainer creates and starts an Oracle container with an empty
// application schema.
func NewOracleContainer(ctx context.Context, opts ...OracleOption) (*OracleContainer, error) {
	cfg := &oracleConfig{
		image:        DefaultOracleImage,
		startTimeout: 5 * time.Minute,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultOraclePort + "/tcp"},
		Env: map[string]string{
			"ORACLE_PASSWORD":   DefaultOraclePassword,
			"APP_USER":          DefaultOracleUser,
			"APP_USER_PASSWORD": DefaultOraclePassword,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultOraclePort+"/tcp"),
			wait.ForLog("DATABASE IS READY TO USE!"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create oracle container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get oracle container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, DefaultOraclePort+"/tcp")
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get oracle container port: %w", err)
	}

	return &OracleContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
		Service:   DefaultOracleService,
		Username:  DefaultOracleUser,
		Password:  DefaultOraclePassword,
	}, nil
}

// Config returns an OracleConfig pointing at the container.
func (c *OracleContainer) Config(table string) *config.OracleConfig {
	return &config.OracleConfig{
		Host:     c.Host,
		Port:     c.Port,
		Service:  c.Service,
		Username: c.Username,
		Password: c.Password,
		Table:    table,
	}
}
