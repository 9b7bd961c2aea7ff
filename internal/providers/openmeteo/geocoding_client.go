package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Paris&count=1&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultLanguage  = "en"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	language   string
	logger     *slog.Logger
}

func NewGeocodingClient(opts Options, logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{
		httpClient: opts.httpClient(),
		baseURL:    opts.baseURL(baseGeocodingURL),
		language:   defaultLanguage,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// WithLanguage overrides the result language.
func (c *GeocodingClient) WithLanguage(language string) *GeocodingClient {
	if language != "" {
		c.language = language
	}
	return c
}

// Search looks up places by name, returning at most count results in the
// service's relevance order.
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", c.language)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
