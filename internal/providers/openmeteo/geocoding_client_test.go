package openmeteo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeocodingClient_Search(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GeocodingAPIResponse)
	}{
		{
			name:   "single result",
			status: http.StatusOK,
			body: `{"results":[{"id":2988507,"name":"Paris","latitude":48.85341,"longitude":2.3488,
				"country_code":"FR","country":"France","admin1":"Île-de-France","timezone":"Europe/Paris"}],
				"generationtime_ms":0.9}`,
			validate: func(t *testing.T, resp *GeocodingAPIResponse) {
				if len(resp.Results) != 1 {
					t.Fatalf("len(Results) = %d, want 1", len(resp.Results))
				}
				r := resp.Results[0]
				if r.Name != "Paris" || r.Country != "France" {
					t.Errorf("got %s, %s; want Paris, France", r.Name, r.Country)
				}
				if r.Latitude != 48.85341 || r.Longitude != 2.3488 {
					t.Errorf("got coords %v,%v", r.Latitude, r.Longitude)
				}
				if r.Timezone != "Europe/Paris" {
					t.Errorf("Timezone = %q", r.Timezone)
				}
			},
		},
		{
			name:   "no results key",
			status: http.StatusOK,
			body:   `{"generationtime_ms":0.5}`,
			validate: func(t *testing.T, resp *GeocodingAPIResponse) {
				if len(resp.Results) != 0 {
					t.Errorf("len(Results) = %d, want 0", len(resp.Results))
				}
			},
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `{"error":true,"reason":"boom"}`,
			wantErr:     true,
			errContains: "fetch returned status 500",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `<html>not json</html>`,
			wantErr:     true,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewGeocodingClient(Options{BaseURL: srv.URL}, discardLogger())
			got, err := client.Search(context.Background(), "Paris", 1)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Search() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Search() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Search() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestGeocodingClient_SearchQueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("name"); got != "São Paulo" {
			t.Errorf("name = %q, want %q", got, "São Paulo")
		}
		if got := q.Get("count"); got != "1" {
			t.Errorf("count = %q, want 1", got)
		}
		if got := q.Get("language"); got != "en" {
			t.Errorf("language = %q, want en", got)
		}
		if got := q.Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := NewGeocodingClient(Options{BaseURL: srv.URL}, discardLogger())
	if _, err := client.Search(context.Background(), "São Paulo", 1); err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
}

func TestGeocodingClient_SearchContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewGeocodingClient(Options{BaseURL: srv.URL}, discardLogger())
	if _, err := client.Search(ctx, "Paris", 1); err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}
