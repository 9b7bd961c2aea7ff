package types

import "testing"

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    string
	}{
		{name: "north", degrees: 0, want: "N"},
		{name: "just under north wraparound", degrees: 355, want: "N"},
		{name: "full circle", degrees: 360, want: "N"},
		{name: "north north east", degrees: 22.5, want: "NNE"},
		{name: "east", degrees: 90, want: "E"},
		{name: "south", degrees: 180, want: "S"},
		{name: "south west", degrees: 225, want: "SW"},
		{name: "west north west", degrees: 292.5, want: "WNW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardinalDirection(tt.degrees); got != tt.want {
				t.Errorf("CardinalDirection(%v) = %q, want %q", tt.degrees, got, tt.want)
			}
		})
	}
}

func TestResolvedLocation_DisplayName(t *testing.T) {
	loc := ResolvedLocation{Name: "Paris", Country: "France"}
	if got := loc.DisplayName(); got != "Paris, France" {
		t.Errorf("DisplayName() = %q, want %q", got, "Paris, France")
	}

	loc.Country = ""
	if got := loc.DisplayName(); got != "Paris" {
		t.Errorf("DisplayName() = %q, want %q", got, "Paris")
	}
}
