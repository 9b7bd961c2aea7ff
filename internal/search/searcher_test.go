package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"weather-now/internal/apperr"
	"weather-now/internal/types"
)

type mockLocationService struct {
	location *types.ResolvedLocation
	err      error
	calls    int
}

func (m *mockLocationService) Resolve(ctx context.Context, query string) (*types.ResolvedLocation, error) {
	m.calls++
	return m.location, m.err
}

type mockWeatherService struct {
	conditions *types.CurrentConditions
	err        error
	calls      int
	lastCoords types.Coords
}

func (m *mockWeatherService) GetCurrentConditions(ctx context.Context, coords types.Coords) (*types.CurrentConditions, error) {
	m.calls++
	m.lastCoords = coords
	return m.conditions, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parisLocation() *types.ResolvedLocation {
	return &types.ResolvedLocation{
		Coordinates: types.NewCoords(48.8566, 2.3522),
		Name:        "Paris",
		Country:     "France",
	}
}

func parisConditions() *types.CurrentConditions {
	return &types.CurrentConditions{
		Temperature:         18.4,
		ApparentTemperature: 17.2,
		RelativeHumidity:    64,
		WeatherCode:         2,
		WindSpeed:           11.3,
		WindDirection:       225,
		Pressure:            1017.8,
		Visibility:          24140,
		Timezone:            "Europe/Paris",
	}
}

func TestSearcher_Search(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		location     *types.ResolvedLocation
		locationErr  error
		conditions   *types.CurrentConditions
		weatherErr   error
		wantState    State
		wantKind     apperr.Kind
		wantResolves int
		wantFetches  int
	}{
		{
			name:         "both stages succeed",
			query:        "Paris",
			location:     parisLocation(),
			conditions:   parisConditions(),
			wantState:    StateSuccess,
			wantResolves: 1,
			wantFetches:  1,
		},
		{
			name:         "empty query never reaches the network",
			query:        "   ",
			wantState:    StateFailure,
			wantKind:     apperr.KindEmptyQuery,
			wantResolves: 0,
			wantFetches:  0,
		},
		{
			name:         "no match skips the forecast",
			query:        "Atlantis",
			locationErr:  apperr.NoMatch("location.Resolve", "Atlantis"),
			wantState:    StateFailure,
			wantKind:     apperr.KindNoMatch,
			wantResolves: 1,
			wantFetches:  0,
		},
		{
			name:         "geocoding network error skips the forecast",
			query:        "Paris",
			locationErr:  apperr.Network("location.Resolve", errors.New("dial tcp: timeout")),
			wantState:    StateFailure,
			wantKind:     apperr.KindNetwork,
			wantResolves: 1,
			wantFetches:  0,
		},
		{
			name:         "forecast failure discards the location",
			query:        "Paris",
			location:     parisLocation(),
			weatherErr:   apperr.Network("weather.GetCurrentConditions", errors.New("malformed")),
			wantState:    StateFailure,
			wantKind:     apperr.KindNetwork,
			wantResolves: 1,
			wantFetches:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations := &mockLocationService{location: tt.location, err: tt.locationErr}
			weatherSvc := &mockWeatherService{conditions: tt.conditions, err: tt.weatherErr}
			searcher := NewSearcher(locations, weatherSvc, testLogger())

			got := searcher.Search(context.Background(), tt.query)

			if got.State != tt.wantState {
				t.Fatalf("State = %v, want %v", got.State, tt.wantState)
			}
			if locations.calls != tt.wantResolves {
				t.Errorf("resolver calls = %d, want %d", locations.calls, tt.wantResolves)
			}
			if weatherSvc.calls != tt.wantFetches {
				t.Errorf("fetcher calls = %d, want %d", weatherSvc.calls, tt.wantFetches)
			}

			if tt.wantState == StateFailure {
				if got.ErrorKind() != tt.wantKind {
					t.Errorf("ErrorKind() = %v, want %v", got.ErrorKind(), tt.wantKind)
				}
				if got.Location != nil || got.Conditions != nil {
					t.Errorf("failure outcome carries data: %+v", got)
				}
				if got.Message() == "" {
					t.Error("failure outcome has no message")
				}
				return
			}

			if got.Err != nil {
				t.Errorf("success outcome carries error %v", got.Err)
			}
			if weatherSvc.lastCoords != tt.location.Coordinates {
				t.Errorf("fetcher got coords %+v, want %+v", weatherSvc.lastCoords, tt.location.Coordinates)
			}
			if got.Location.DisplayName() != "Paris, France" {
				t.Errorf("DisplayName() = %q", got.Location.DisplayName())
			}
			if got.Conditions.Temperature != 18.4 {
				t.Errorf("Temperature = %v, want unrounded 18.4", got.Conditions.Temperature)
			}
		})
	}
}

func TestOutcome_MarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		data, err := json.Marshal(Success("Paris", parisLocation(), parisConditions()))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		body := string(data)
		for _, want := range []string{`"state":"success"`, `"name":"Paris"`, `"weatherCode":2`, `"temperature":18.4`} {
			if !strings.Contains(body, want) {
				t.Errorf("JSON %s missing %s", body, want)
			}
		}
		if strings.Contains(body, `"error"`) {
			t.Errorf("success JSON has error field: %s", body)
		}
	})

	t.Run("failure hides the cause", func(t *testing.T) {
		err := apperr.Network("weather.GetCurrentConditions", errors.New("secret upstream detail"))
		data, mErr := json.Marshal(Failure("Paris", err))
		if mErr != nil {
			t.Fatalf("Marshal() error = %v", mErr)
		}
		body := string(data)
		if !strings.Contains(body, `"kind":"network_error"`) {
			t.Errorf("JSON %s missing kind", body)
		}
		if !strings.Contains(body, "Failed to fetch weather data. Please try again.") {
			t.Errorf("JSON %s missing message", body)
		}
		if strings.Contains(body, "secret upstream detail") {
			t.Errorf("JSON leaks cause: %s", body)
		}
	})

	t.Run("idle", func(t *testing.T) {
		data, err := json.Marshal(Idle())
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `{"state":"idle"}` {
			t.Errorf("Marshal(Idle()) = %s", data)
		}
	})
}
