//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"testing"
)

func TestGeocodingAndForecast_Integration(t *testing.T) {
	ctx := context.Background()

	geo := NewGeocodingClient(Options{}, discardLogger())

	t.Logf("Making API call to OpenMeteo Geocoding API...")
	geoResp, err := geo.Search(ctx, "Paris", 1)
	if err != nil {
		t.Fatalf("Failed to geocode: %v", err)
	}
	if len(geoResp.Results) == 0 {
		t.Fatal("No geocoding results for Paris")
	}

	place := geoResp.Results[0]
	t.Logf("Resolved %s, %s to lat=%f, lon=%f", place.Name, place.Country, place.Latitude, place.Longitude)

	forecast := NewForecastClient(Options{}, discardLogger())
	resp, err := forecast.GetCurrent(ctx, place.Latitude, place.Longitude)
	if err != nil {
		t.Fatalf("Failed to get current conditions: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Current == nil {
		t.Fatal("Current block is missing")
	}
	if resp.Timezone != "Europe/Paris" {
		t.Errorf("Timezone = %q, want Europe/Paris", resp.Timezone)
	}
	if resp.Current.Temperature2M == nil {
		t.Error("temperature_2m missing")
	} else if *resp.Current.Temperature2M < -40 || *resp.Current.Temperature2M > 50 {
		t.Errorf("temperature %v°C seems unreasonable", *resp.Current.Temperature2M)
	}

	t.Log("✓ API calls successful, response structure valid")
}
