package openmeteo

type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Elevation   float64  `json:"elevation"`
	FeatureCode string   `json:"feature_code"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Admin1      string   `json:"admin1"`
	Timezone    string   `json:"timezone"`
	Population  int64    `json:"population"`
	Postcodes   []string `json:"postcodes"`
}

type ForecastAPIResponse struct {
	Latitude             float64        `json:"latitude"`
	Longitude            float64        `json:"longitude"`
	GenerationtimeMs     float64        `json:"generationtime_ms"`
	UtcOffsetSeconds     int            `json:"utc_offset_seconds"`
	Timezone             string         `json:"timezone"`
	TimezoneAbbreviation string         `json:"timezone_abbreviation"`
	Elevation            float64        `json:"elevation"`
	CurrentUnits         *CurrentUnits  `json:"current_units"`
	Current              *CurrentValues `json:"current"`
}

type CurrentUnits struct {
	Time                string `json:"time"`
	Interval            string `json:"interval"`
	Temperature2M       string `json:"temperature_2m"`
	RelativeHumidity2M  string `json:"relative_humidity_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	Precipitation       string `json:"precipitation"`
	WeatherCode         string `json:"weather_code"`
	WindSpeed10M        string `json:"wind_speed_10m"`
	WindDirection10M    string `json:"wind_direction_10m"`
	PressureMsl         string `json:"pressure_msl"`
	Visibility          string `json:"visibility"`
}

// CurrentValues uses pointers so that missing variables can be told apart
// from zero readings.
type CurrentValues struct {
	Time                string   `json:"time"`
	Interval            int      `json:"interval"`
	Temperature2M       *float64 `json:"temperature_2m"`
	RelativeHumidity2M  *float64 `json:"relative_humidity_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	Precipitation       *float64 `json:"precipitation"`
	WeatherCode         *int     `json:"weather_code"`
	WindSpeed10M        *float64 `json:"wind_speed_10m"`
	WindDirection10M    *float64 `json:"wind_direction_10m"`
	PressureMsl         *float64 `json:"pressure_msl"`
	Visibility          *float64 `json:"visibility"`
}
