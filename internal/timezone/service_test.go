package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Paris, France",
			latitude:  48.8566,
			longitude: 2.3522,
			want:      "Europe/Paris",
		},
		{
			name:      "New York City",
			latitude:  40.7128,
			longitude: -74.0060,
			want:      "America/New_York",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_LoadLocation(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "known zone is used as is", zone: "Asia/Tokyo", want: "Asia/Tokyo"},
		{name: "empty zone falls back to coordinates", zone: "", want: "Europe/Paris"},
		{name: "unknown zone falls back to coordinates", zone: "Mars/Olympus_Mons", want: "Europe/Paris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := svc.LoadLocation(tt.zone, 48.8566, 2.3522)
			if err != nil {
				t.Fatalf("LoadLocation() error = %v", err)
			}
			if loc.String() != tt.want {
				t.Errorf("LoadLocation() = %v, want %v", loc, tt.want)
			}
		})
	}
}
