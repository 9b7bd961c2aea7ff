package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weather-now/internal/apperr"
	"weather-now/internal/providers/openmeteo"
	"weather-now/internal/types"
)

const opGetCurrent = "weather.GetCurrentConditions"

// ErrMalformedResponse is wrapped when the forecast body lacks a required field.
var ErrMalformedResponse = errors.New("malformed forecast response")

type ForecastProvider interface {
	// GetCurrent fetches current conditions for the given latitude and longitude
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetCurrentConditions(ctx context.Context, coords types.Coords) (*types.CurrentConditions, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

func NewWeatherService(opts openmeteo.Options, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(opts, logger), logger)
}

func NewWeatherServiceWithProvider(forecastProvider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "weather-service"),
	}
}

// GetCurrentConditions issues one forecast request for coords. Any transport
// failure or malformed body fails the whole fetch.
func (s *weatherService) GetCurrentConditions(ctx context.Context, coords types.Coords) (*types.CurrentConditions, error) {
	apiResponse, err := s.forecastProvider.GetCurrent(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get current conditions from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, apperr.Network(opGetCurrent, fmt.Errorf("failed to get forecast: %w", err))
	}

	conditions, err := mapForecastAPIResponseToConditions(apiResponse)
	if err != nil {
		s.logger.Error("failed to map forecast response",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, apperr.Network(opGetCurrent, err)
	}

	s.logger.Debug("fetched current conditions",
		"coordinates", coords.String(),
		"timezone", conditions.Timezone,
		"weather_code", conditions.WeatherCode,
	)

	return conditions, nil
}

func mapForecastAPIResponseToConditions(apiResponse *openmeteo.ForecastAPIResponse) (*types.CurrentConditions, error) {
	if apiResponse == nil {
		return nil, fmt.Errorf("%w: response is nil", ErrMalformedResponse)
	}
	current := apiResponse.Current
	if current == nil {
		return nil, fmt.Errorf("%w: missing current block", ErrMalformedResponse)
	}

	missing := missingVariables(current)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrMalformedResponse, missing)
	}

	return &types.CurrentConditions{
		Temperature:          *current.Temperature2M,
		ApparentTemperature:  *current.ApparentTemperature,
		RelativeHumidity:     *current.RelativeHumidity2M,
		Precipitation:        *current.Precipitation,
		WeatherCode:          *current.WeatherCode,
		WindSpeed:            *current.WindSpeed10M,
		WindDirection:        *current.WindDirection10M,
		Pressure:             *current.PressureMsl,
		Visibility:           *current.Visibility,
		Timezone:             apiResponse.Timezone,
		TimezoneAbbreviation: apiResponse.TimezoneAbbreviation,
		UTCOffsetSeconds:     apiResponse.UtcOffsetSeconds,
		ObservedAt:           toTime(current.Time, apiResponse.UtcOffsetSeconds, apiResponse.TimezoneAbbreviation),
	}, nil
}

func missingVariables(current *openmeteo.CurrentValues) []string {
	var missing []string
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	check("temperature_2m", current.Temperature2M != nil)
	check("relative_humidity_2m", current.RelativeHumidity2M != nil)
	check("apparent_temperature", current.ApparentTemperature != nil)
	check("precipitation", current.Precipitation != nil)
	check("weather_code", current.WeatherCode != nil)
	check("wind_speed_10m", current.WindSpeed10M != nil)
	check("wind_direction_10m", current.WindDirection10M != nil)
	check("pressure_msl", current.PressureMsl != nil)
	check("visibility", current.Visibility != nil)
	return missing
}

// toTime parses an Open-Meteo local timestamp. Returns the zero time when
// the value does not parse.
func toTime(value string, utcOffsetSeconds int, abbreviation string) time.Time {
	if abbreviation == "" {
		abbreviation = "UTC"
	}
	loc := time.FixedZone(abbreviation, utcOffsetSeconds)
	t, err := time.ParseInLocation("2006-01-02T15:04", value, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
