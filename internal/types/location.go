package types

// ResolvedLocation is the best geocoding match for a city query.
// It only lives for the duration of one search.
type ResolvedLocation struct {
	Coordinates Coords `json:"coordinates"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode,omitempty"`
	Admin1      string `json:"admin1,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// DisplayName returns "Name, Country", or just the name when the geocoder
// reported no country.
func (l ResolvedLocation) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}
