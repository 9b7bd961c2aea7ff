package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.8566&longitude=2.3522&current=temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_direction_10m,pressure_msl,visibility&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// CurrentVariables is the fixed field set requested for current conditions.
var CurrentVariables = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"precipitation",
	"weather_code",
	"wind_speed_10m",
	"wind_direction_10m",
	"pressure_msl",
	"visibility",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(opts Options, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: opts.httpClient(),
		baseURL:    opts.baseURL(baseForecastURL),
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetCurrent fetches current conditions for the given latitude and longitude,
// letting the service resolve the local timezone.
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", strings.Join(CurrentVariables, ","))
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	var apiResp ForecastAPIResponse
	if err := getJSON(ctx, c.httpClient, c.logger, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
