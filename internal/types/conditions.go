package types

import "time"

// CurrentConditions is a point-in-time observation for one location.
// Values are stored as reported; rounding happens only at display time.
type CurrentConditions struct {
	Temperature         float64 `json:"temperature"`         // °C
	ApparentTemperature float64 `json:"apparentTemperature"` // °C
	RelativeHumidity    float64 `json:"relativeHumidity"`    // %
	Precipitation       float64 `json:"precipitation"`       // mm
	WeatherCode         int     `json:"weatherCode"`
	WindSpeed           float64 `json:"windSpeed"`     // km/h
	WindDirection       float64 `json:"windDirection"` // degrees
	Pressure            float64 `json:"pressure"`      // hPa, mean sea level
	Visibility          float64 `json:"visibility"`    // meters
	Timezone            string  `json:"timezone"`

	TimezoneAbbreviation string    `json:"timezoneAbbreviation,omitempty"`
	UTCOffsetSeconds     int       `json:"utcOffsetSeconds"`
	ObservedAt           time.Time `json:"observedAt,omitzero"`
}

// Wind returns the wind reading in display form.
func (c CurrentConditions) Wind() Wind {
	return NewWindFromKph(c.WindSpeed, c.WindDirection)
}
