package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"weather-now/internal/apperr"
	"weather-now/internal/providers/openmeteo"
	"weather-now/internal/types"
)

const opResolve = "location.Resolve"

// Service resolves free-text city names to coordinates
type Service interface {
	// Resolve returns the best geocoding match for query
	Resolve(ctx context.Context, query string) (*types.ResolvedLocation, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service backed by the Open-Meteo geocoder
func NewLocationService(opts openmeteo.Options, language string, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(
		openmeteo.NewGeocodingClient(opts, logger).WithLanguage(language),
		logger,
	)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

// ValidateQuery trims query and rejects empty input.
func ValidateQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", apperr.EmptyQuery(opResolve)
	}
	return trimmed, nil
}

// Resolve looks up query with a single request restricted to one result.
// The first result is taken as is; no secondary ranking is applied.
func (s *locationService) Resolve(ctx context.Context, query string) (*types.ResolvedLocation, error) {
	trimmed, err := ValidateQuery(query)
	if err != nil {
		return nil, err
	}

	resp, err := s.geocodeProvider.Search(ctx, trimmed, 1)
	if err != nil {
		s.logger.Error("failed to geocode city",
			"query", trimmed,
			"error", err,
		)
		return nil, apperr.Network(opResolve, fmt.Errorf("failed to geocode: %w", err))
	}

	loc, err := s.translateLocation(resp)
	if err != nil {
		if errors.Is(err, apperr.ErrNoMatch) {
			s.logger.Info("no geocoding match", "query", trimmed)
			return nil, apperr.NoMatch(opResolve, trimmed)
		}
		return nil, err
	}

	s.logger.Debug("resolved city",
		"query", trimmed,
		"name", loc.Name,
		"country", loc.Country,
		"coordinates", loc.Coordinates.String(),
	)

	return loc, nil
}

// translateLocation converts a geocoding response to the domain ResolvedLocation type
func (s *locationService) translateLocation(resp *openmeteo.GeocodingAPIResponse) (*types.ResolvedLocation, error) {
	if resp == nil {
		return nil, apperr.Network(opResolve, errors.New("geocoding response is nil"))
	}
	if len(resp.Results) == 0 {
		return nil, apperr.ErrNoMatch
	}

	first := resp.Results[0]
	return &types.ResolvedLocation{
		Coordinates: types.NewCoords(first.Latitude, first.Longitude),
		Name:        first.Name,
		Country:     first.Country,
		CountryCode: first.CountryCode,
		Admin1:      first.Admin1,
		Timezone:    first.Timezone,
	}, nil
}
