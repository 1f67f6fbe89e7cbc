// Package ytmusic provides an HTTP adapter for the YouTube Music catalog
// API. It implements the catalog port: search for songs, map the wire
// records to domain tracks, retry transient failures with backoff.
package ytmusic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/findbgm/internal/config"
	"github.com/ewilliams-labs/findbgm/internal/core/domain"
	"github.com/ewilliams-labs/findbgm/internal/core/ports"
)

// Client is an HTTP client for the catalog adapter.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	log         *logrus.Logger
}

// compile-time interface assertion
var _ ports.CatalogClient = (*Client)(nil)

// NewClient constructs a catalog client from configuration. When an access
// token is configured the underlying transport injects it as a bearer token
// via oauth2.
func NewClient(cfg config.CatalogConfig, log *logrus.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.AccessToken != "" {
		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		})
		httpClient = oauth2.NewClient(context.Background(), source)
		httpClient.Timeout = timeout
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries:  cfg.MaxRetries,
		baseBackoff: time.Duration(cfg.RetryBackoffMs) * time.Millisecond,
		log:         log,
	}
}

// Search queries the catalog for tracks matching the term and maps the
// results to domain tracks.
func (c *Client) Search(ctx context.Context, term string, filter string, limit int) ([]domain.Track, error) {
	searchURL, err := url.Parse(fmt.Sprintf("%s/search", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("ytmusic adapter: invalid search url: %w", err)
	}

	query := searchURL.Query()
	query.Set("q", term)
	query.Set("filter", filter)
	query.Set("limit", strconv.Itoa(limit))
	searchURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("ytmusic adapter: failed to create search request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("ytmusic adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ytmusic adapter: search status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("ytmusic adapter: search decode error: %w", err)
	}

	tracks := make([]domain.Track, 0, len(body.Results))
	for _, result := range body.Results {
		tracks = append(tracks, result.toDomain())
	}
	return tracks, nil
}
