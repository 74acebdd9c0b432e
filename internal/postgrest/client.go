// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package postgrest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/sponsorcheck/internal/config"
	"github.com/tomtom215/sponsorcheck/internal/metrics"
	"github.com/tomtom215/sponsorcheck/internal/models"
)

// backendName labels store metrics for this backend.
const backendName = "postgrest"

// Client queries a sponsor register table through PostgREST.
type Client struct {
	baseURL    string
	apiKey     string
	table      string
	columns    config.ColumnConfig
	httpClient *http.Client
}

// APIError is a non-2xx PostgREST response. Error returns the server's
// message so it can be shown to API clients unchanged.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("postgrest returned status %d", e.StatusCode)
}

// NewClient creates a PostgREST client for cfg.
func NewClient(cfg *config.PostgRESTConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		table:   cfg.Table,
		columns: cfg.Columns,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FindByName returns rows whose name column contains name, ignoring case.
// limit <= 0 omits the limit parameter.
func (c *Client) FindByName(ctx context.Context, name string, limit int) ([]models.SponsorRecord, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("select", selectList(c.columns.Name, c.columns.Town, c.columns.County, c.columns.TypeRating, c.columns.Route))
	params.Set(c.columns.Name, "ilike.*"+name+"*")
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var rows []map[string]interface{}
	err := c.getJSON(ctx, params, &rows)
	metrics.RecordStoreQuery(backendName, "find_by_name", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	records := make([]models.SponsorRecord, len(rows))
	for i, row := range rows {
		records[i] = models.SponsorRecord{
			OrganisationName: stringField(row, c.columns.Name),
			TownCity:         stringField(row, c.columns.Town),
			County:           stringField(row, c.columns.County),
			TypeRating:       stringField(row, c.columns.TypeRating),
			Route:            stringField(row, c.columns.Route),
		}
	}
	return records, nil
}

// RouteValues returns the route of every row where it is not null.
func (c *Client) RouteValues(ctx context.Context) ([]string, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("select", selectList(c.columns.Route))
	params.Set(c.columns.Route, "not.is.null")

	var rows []map[string]interface{}
	err := c.getJSON(ctx, params, &rows)
	metrics.RecordStoreQuery(backendName, "route_values", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	routes := make([]string, 0, len(rows))
	for _, row := range rows {
		if v, ok := row[c.columns.Route]; ok && v != nil {
			routes = append(routes, stringField(row, c.columns.Route))
		}
	}
	return routes, nil
}

// CountSponsors issues a HEAD request with Prefer: count=exact and reads the
// total from Content-Range. A "*" total yields nil.
func (c *Client) CountSponsors(ctx context.Context) (*int64, error) {
	start := time.Now()
	count, err := c.count(ctx)
	metrics.RecordStoreQuery(backendName, "count", time.Since(start), err)
	return count, err
}

func (c *Client) count(ctx context.Context) (*int64, error) {
	params := url.Values{}
	params.Set("select", "*")

	req, err := c.newRequest(ctx, http.MethodHead, params)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postgrest count request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	return parseContentRangeTotal(resp.Header.Get("Content-Range"))
}

// parseContentRangeTotal reads the total from "0-24/3521" or "*/3521".
func parseContentRangeTotal(header string) (*int64, error) {
	idx := strings.LastIndexByte(header, '/')
	if idx < 0 {
		return nil, nil
	}
	total := strings.TrimSpace(header[idx+1:])
	if total == "" || total == "*" {
		return nil, nil
	}
	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid Content-Range total %q: %w", total, err)
	}
	return &n, nil
}

func (c *Client) newRequest(ctx context.Context, method string, params url.Values) (*http.Request, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(c.table) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgrest request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// getJSON performs a GET and decodes the JSON array response into out.
func (c *Client) getJSON(ctx context.Context, params url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, params)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("postgrest request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode postgrest response: %w", err)
	}
	return nil
}

// decodeAPIError reads a PostgREST error body. Bodies that are not the usual
// {code, message, details, hint} object are kept as the message.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	if json.Unmarshal(body, apiErr) != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// selectList renders a select parameter, double-quoting names PostgREST
// would otherwise misparse (spaces, slashes, ampersands).
func selectList(columns ...string) string {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		if isPlainIdentifier(col) {
			quoted[i] = col
		} else {
			quoted[i] = `"` + strings.ReplaceAll(col, `"`, `\"`) + `"`
		}
	}
	return strings.Join(quoted, ",")
}

func isPlainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// stringField returns row[key] as text; null and missing become "".
func stringField(row map[string]interface{}, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
