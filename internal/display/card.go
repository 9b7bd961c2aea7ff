// Package display turns search outcomes into the strings the widget shows.
package display

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"weather-now/internal/search"
	"weather-now/internal/types"
)

const dateLayout = "Monday, January 2, 2006"

// ZoneLoader resolves the location used to print the local date.
type ZoneLoader interface {
	LoadLocation(name string, latitude, longitude float64) (*time.Location, error)
}

// Card is the result card of a successful search.
type Card struct {
	Title         string         `json:"title"`
	Date          string         `json:"date"`
	Icon          string         `json:"icon"`
	Category      types.Category `json:"category"`
	Temperature   string         `json:"temperature"`
	Description   string         `json:"description"`
	FeelsLike     string         `json:"feelsLike"`
	WindSpeed     string         `json:"windSpeed"`
	Humidity      string         `json:"humidity"`
	Pressure      string         `json:"pressure"`
	Visibility    string         `json:"visibility"`
	Precipitation string         `json:"precipitation"`
	WindDirection string         `json:"windDirection"`
}

// View is everything the page template needs for one render.
type View struct {
	State   search.State
	Query   string
	Loading bool
	Error   string
	Card    *Card
}

// Renderer builds views. Zones may be nil, in which case the date is printed
// in the service's reported UTC offset.
type Renderer struct {
	policy types.CategoryPolicy
	zones  ZoneLoader
	now    func() time.Time
}

func NewRenderer(policy types.CategoryPolicy, zones ZoneLoader) *Renderer {
	return &Renderer{
		policy: policy,
		zones:  zones,
		now:    time.Now,
	}
}

// View renders outcome. Exactly one of prompt, loading, error or card applies.
func (r *Renderer) View(outcome search.Outcome) View {
	v := View{State: outcome.State, Query: outcome.Query}
	switch outcome.State {
	case search.StateLoading:
		v.Loading = true
	case search.StateFailure:
		v.Error = outcome.Message()
	case search.StateSuccess:
		if outcome.Location != nil && outcome.Conditions != nil {
			v.Card = r.Card(*outcome.Location, *outcome.Conditions)
		}
	}
	return v
}

// Card formats a resolved location and its conditions.
func (r *Renderer) Card(loc types.ResolvedLocation, c types.CurrentConditions) *Card {
	class := types.ClassifyWithPolicy(c.WeatherCode, r.policy)
	wind := c.Wind()

	return &Card{
		Title:         loc.DisplayName(),
		Date:          r.now().In(r.zone(loc, c)).Format(dateLayout),
		Icon:          Icon(class.Category),
		Category:      class.Category,
		Temperature:   fmt.Sprintf("%d°C", Round(c.Temperature)),
		Description:   class.Description,
		FeelsLike:     fmt.Sprintf("Feels like %d°C", Round(c.ApparentTemperature)),
		WindSpeed:     fmt.Sprintf("%d km/h", Round(wind.SpeedInKph)),
		Humidity:      formatNumber(c.RelativeHumidity) + "%",
		Pressure:      fmt.Sprintf("%d hPa", Round(c.Pressure)),
		Visibility:    strconv.FormatFloat(c.Visibility/1000, 'f', 1, 64) + " km",
		Precipitation: formatNumber(c.Precipitation) + " mm",
		WindDirection: fmt.Sprintf("%s° %s", formatNumber(wind.DirectionDegrees), wind.DirectionCardinal),
	}
}

func (r *Renderer) zone(loc types.ResolvedLocation, c types.CurrentConditions) *time.Location {
	if r.zones != nil {
		if z, err := r.zones.LoadLocation(c.Timezone, loc.Coordinates.Latitude, loc.Coordinates.Longitude); err == nil {
			return z
		}
	}
	name := c.TimezoneAbbreviation
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, c.UTCOffsetSeconds)
}

// Round rounds half up, so -2.5 becomes -2 and 2.5 becomes 3.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Icon returns the glyph drawn for a category.
func Icon(category types.Category) string {
	switch category {
	case types.CategoryClear:
		return "☀️"
	case types.CategoryRain:
		return "🌧️"
	case types.CategorySnow:
		return "🌨️"
	default:
		return "☁️"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
