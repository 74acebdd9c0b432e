// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package database

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/sponsor"
)

// testDBSemaphore serializes DuckDB tests; concurrent CGO connections can hang
// under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

var _ sponsor.Store = (*DB)(nil)

// setupTestDB creates an in-memory register seeded with the sample sponsors.
// The semaphore is held until the test completes.
func setupTestDB(t *testing.T, cfg *config.DatabaseConfig) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	if cfg == nil {
		cfg = &config.DatabaseConfig{SeedSample: true}
	}
	if cfg.Path == "" {
		cfg.Path = ":memory:"
	}
	if cfg.MaxMemory == "" {
		cfg.MaxMemory = "256MB"
	}
	if cfg.Table == "" {
		cfg.Table = "sponsors"
	}
	cfg.Threads = 1

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func TestNew_SeedsSampleData(t *testing.T) {
	db := setupTestDB(t, nil)

	count, err := db.CountSponsors(context.Background())
	if err != nil {
		t.Fatalf("CountSponsors: %v", err)
	}
	if *count != int64(len(sampleSponsors)) {
		t.Errorf("count = %d, want %d", *count, len(sampleSponsors))
	}
	if db.Backend() != "duckdb" {
		t.Errorf("Backend() = %q, want duckdb", db.Backend())
	}
}

func TestNew_EmptyWithoutSeed(t *testing.T) {
	db := setupTestDB(t, &config.DatabaseConfig{})

	count, err := db.CountSponsors(context.Background())
	if err != nil {
		t.Fatalf("CountSponsors: %v", err)
	}
	if *count != 0 {
		t.Errorf("count = %d, want 0", *count)
	}

	rows, err := db.FindByName(context.Background(), "acme", 10)
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestFindByName(t *testing.T) {
	db := setupTestDB(t, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		limit     int
		wantCount int
	}{
		{"case insensitive", "ACME", 10, 2},
		{"substring in middle", "engineering", 10, 1},
		{"limit applied", "acme", 1, 1},
		{"unbounded", "e", 0, len(sampleSponsors)},
		{"no match", "Zzzznotreal", 10, 0},
		{"apostrophe is bound not interpolated", "Aldhelm's", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := db.FindByName(ctx, tt.query, tt.limit)
			if err != nil {
				t.Fatalf("FindByName(%q): %v", tt.query, err)
			}
			if len(rows) != tt.wantCount {
				t.Errorf("FindByName(%q, %d) returned %d rows, want %d", tt.query, tt.limit, len(rows), tt.wantCount)
			}
		})
	}
}

func TestFindByName_PreservesTableOrderAndNulls(t *testing.T) {
	db := setupTestDB(t, nil)

	first, err := db.FindByName(context.Background(), "acme", 10)
	if err != nil {
		t.Fatal(err)
	}
	second, err := db.FindByName(context.Background(), "acme", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first, second) {
		t.Errorf("repeated query returned different rows:\n%v\n%v", first, second)
	}
	if first[0].TownCity != "Leeds" || first[1].TownCity != "Manchester" {
		t.Errorf("expected insertion order, got %v", first)
	}

	orchards, err := db.FindByName(context.Background(), "orchards", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(orchards) != 1 || orchards[0].TownCity != "" || orchards[0].County != "Kent" {
		t.Errorf("expected NULL town to scan as empty string, got %+v", orchards)
	}
}

func TestRouteValues(t *testing.T) {
	db := setupTestDB(t, nil)

	if _, err := db.Conn().Exec("INSERT INTO sponsors (organisation_name, route) VALUES ('Routeless Ltd', NULL)"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	routes, err := db.RouteValues(context.Background())
	if err != nil {
		t.Fatalf("RouteValues: %v", err)
	}
	if len(routes) != len(sampleSponsors) {
		t.Errorf("RouteValues returned %d values, want %d non-null routes", len(routes), len(sampleSponsors))
	}
	if !slices.Contains(routes, "Creative Worker") {
		t.Errorf("expected Creative Worker in %v", routes)
	}
}

func TestImportCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "register's export.csv")
	content := strings.Join([]string{
		`"Organisation Name","Town/City","County","Type & Rating","Route"`,
		`"Acme Ltd","Leeds","West Yorkshire","Worker (A rating)","Skilled Worker"`,
		`"Acme Corp","Leeds","","Worker (A rating)","Skilled Worker"`,
		`"Blank Route Farm","","Kent","Temporary Worker (A rating)",""`,
		`"","Nowhere","","",""`,
	}, "\n") + "\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	db := setupTestDB(t, &config.DatabaseConfig{SeedCSV: csvPath, SeedSample: true})
	ctx := context.Background()

	count, err := db.CountSponsors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if *count != 3 {
		t.Fatalf("imported %d rows, want 3 (blank names skipped, CSV preferred over sample)", *count)
	}

	rows, err := db.FindByName(ctx, "acme", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1].County != "" {
		t.Errorf("unexpected Acme rows: %+v", rows)
	}

	routes, err := db.RouteValues(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(routes) != 2 {
		t.Errorf("blank CSV route should be NULL, got routes %v", routes)
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	_, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Table:     "sponsors",
		SeedCSV:   filepath.Join(t.TempDir(), "missing.csv"),
	})
	if err == nil || !strings.Contains(err.Error(), "register CSV unavailable") {
		t.Fatalf("expected missing CSV error, got %v", err)
	}
}

func TestNew_FileDatabaseCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sponsors.duckdb")
	setupTestDB(t, &config.DatabaseConfig{Path: path, SeedSample: true})

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("expected database directory to be created: %v", err)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	db := setupTestDB(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := db.FindByName(ctx, "acme", 10); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestOracleURL(t *testing.T) {
	t.Parallel()

	plain := oracleURL(&config.OracleConfig{
		Host: "db.internal", Port: 1521, Service: "FREEPDB1", Username: "sponsor_ro", Password: "p@ss",
	})
	if !strings.HasPrefix(plain, "oracle://") || !strings.Contains(plain, "db.internal:1521/FREEPDB1") {
		t.Errorf("unexpected URL %q", plain)
	}
	if strings.Contains(plain, "WALLET") {
		t.Errorf("wallet option without wallet location: %q", plain)
	}

	wallet := oracleURL(&config.OracleConfig{
		Host: "adb.eu-london-1.oraclecloud.com", Port: 1522, Service: "svc_high", Username: "u", Password: "p",
		WalletLocation: "/opt/wallet",
	})
	if !strings.Contains(wallet, "WALLET=") || !strings.Contains(wallet, "SSL=enable") {
		t.Errorf("expected wallet and SSL options in %q", wallet)
	}
}

func TestIndexSuffix(t *testing.T) {
	t.Parallel()

	if got := indexSuffix("register.sponsors"); got != "register_sponsors" {
		t.Errorf("indexSuffix = %q", got)
	}
}
