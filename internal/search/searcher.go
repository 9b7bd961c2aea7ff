// Package search runs the resolve-then-fetch pipeline and holds the
// per-session outcome state machine.
package search

import (
	"context"
	"log/slog"

	"weather-now/internal/apperr"
	"weather-now/internal/location"
	"weather-now/internal/weather"
)

// Searcher chains the location resolver and the conditions fetcher.
type Searcher struct {
	locations location.Service
	weather   weather.Service
	logger    *slog.Logger
}

func NewSearcher(locations location.Service, weatherService weather.Service, logger *slog.Logger) *Searcher {
	return &Searcher{
		locations: locations,
		weather:   weatherService,
		logger:    logger.With("component", "searcher"),
	}
}

// Search resolves query and then fetches its current conditions. It always
// returns a terminal outcome, Success or Failure. The fetcher is never called
// when resolution fails, and a resolved location is dropped when the fetch fails.
func (s *Searcher) Search(ctx context.Context, query string) Outcome {
	trimmed, err := location.ValidateQuery(query)
	if err != nil {
		return Failure(query, err)
	}

	loc, err := s.locations.Resolve(ctx, trimmed)
	if err != nil {
		s.logFailure(trimmed, err)
		return Failure(trimmed, err)
	}

	conditions, err := s.weather.GetCurrentConditions(ctx, loc.Coordinates)
	if err != nil {
		s.logFailure(trimmed, err)
		return Failure(trimmed, err)
	}

	s.logger.Info("search succeeded",
		"query", trimmed,
		"location", loc.DisplayName(),
		"weather_code", conditions.WeatherCode,
	)

	return Success(trimmed, loc, conditions)
}

func (s *Searcher) logFailure(query string, err error) {
	s.logger.Warn("search failed",
		"query", query,
		"kind", apperr.GetKind(err).String(),
		"error", err,
	)
}
