package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"location-selector/models"

	"go.uber.org/zap"
)

// Client talks to the location API. Responses are JSON arrays of names in
// display order.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("component", "location-api"))
	return c
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d (%s)", e.URL, e.Code, e.Status)
}

func (c *Client) Countries(ctx context.Context) ([]models.LocationName, error) {
	return c.fetch(ctx, CountriesPath())
}

func (c *Client) States(ctx context.Context, country models.LocationName) ([]models.LocationName, error) {
	return c.fetch(ctx, StatesPath(country))
}

func (c *Client) Cities(ctx context.Context, country, state models.LocationName) ([]models.LocationName, error) {
	return c.fetch(ctx, CitiesPath(country, state))
}

// CountriesPath, StatesPath and CitiesPath build endpoint paths. The
// "country=" and "state=" markers are part of the route; only the names are
// escaped, each as a single path segment.
func CountriesPath() string {
	return "/countries"
}

func StatesPath(country models.LocationName) string {
	return "/country=" + url.PathEscape(country.String()) + "/states"
}

func CitiesPath(country, state models.LocationName) string {
	return "/country=" + url.PathEscape(country.String()) +
		"/state=" + url.PathEscape(state.String()) + "/cities"
}

func (c *Client) fetch(ctx context.Context, path string) ([]models.LocationName, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + path
	c.logger.Debug("fetching locations", zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("location request failed", zap.String("url", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode, Status: http.StatusText(resp.StatusCode), URL: endpoint}
		c.logger.Error("location API returned error",
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, statusErr
	}

	var raw []string
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logger.Error("failed to decode location response", zap.String("url", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	c.logger.Debug("fetched locations",
		zap.String("url", endpoint),
		zap.Int("count", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return models.Names(raw), nil
}
