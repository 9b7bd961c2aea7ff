package types

import "slices"

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather code constants
const (
	ClearSky                   WeatherCode = 0
	MainlyClear                WeatherCode = 1
	PartlyCloudy               WeatherCode = 2
	Overcast                   WeatherCode = 3
	Fog                        WeatherCode = 45
	DepositingRimeFog          WeatherCode = 48
	DrizzleLight               WeatherCode = 51
	DrizzleModerate            WeatherCode = 53
	DrizzleDense               WeatherCode = 55
	RainSlight                 WeatherCode = 61
	RainModerate               WeatherCode = 63
	RainHeavy                  WeatherCode = 65
	SnowFallSlight             WeatherCode = 71
	SnowFallModerate           WeatherCode = 73
	SnowFallHeavy              WeatherCode = 75
	SnowGrains                 WeatherCode = 77
	RainShowersSlight          WeatherCode = 80
	RainShowersModerate        WeatherCode = 81
	RainShowersViolent         WeatherCode = 82
	SnowShowersSlight          WeatherCode = 85
	SnowShowersHeavy           WeatherCode = 86
	Thunderstorm               WeatherCode = 95
	ThunderstormWithSlightHail WeatherCode = 96
	ThunderstormWithHeavyHail  WeatherCode = 99
)

// UnknownDescription is returned for codes missing from the table.
const UnknownDescription = "Unknown"

// weatherDescriptions maps weather codes to their descriptions
var weatherDescriptions = map[WeatherCode]string{
	ClearSky:                   "Clear sky",
	MainlyClear:                "Mainly clear",
	PartlyCloudy:               "Partly cloudy",
	Overcast:                   "Overcast",
	Fog:                        "Foggy",
	DepositingRimeFog:          "Depositing rime fog",
	DrizzleLight:               "Light drizzle",
	DrizzleModerate:            "Moderate drizzle",
	DrizzleDense:               "Dense drizzle",
	RainSlight:                 "Slight rain",
	RainModerate:               "Moderate rain",
	RainHeavy:                  "Heavy rain",
	SnowFallSlight:             "Slight snow",
	SnowFallModerate:           "Moderate snow",
	SnowFallHeavy:              "Heavy snow",
	SnowGrains:                 "Snow grains",
	RainShowersSlight:          "Slight rain showers",
	RainShowersModerate:        "Moderate rain showers",
	RainShowersViolent:         "Violent rain showers",
	SnowShowersSlight:          "Slight snow showers",
	SnowShowersHeavy:           "Heavy snow showers",
	Thunderstorm:               "Thunderstorm",
	ThunderstormWithSlightHail: "Thunderstorm with slight hail",
	ThunderstormWithHeavyHail:  "Thunderstorm with heavy hail",
}

// Category is the icon family a weather code is drawn with.
type Category string

const (
	CategoryClear  Category = "clear"
	CategoryCloudy Category = "cloudy"
	CategoryRain   Category = "rain"
	CategorySnow   Category = "snow"
	CategoryOther  Category = "other"
)

// CategoryPolicy selects how codes are bucketed into categories.
type CategoryPolicy string

const (
	// PolicyLegacy uses ordered range tests, first match wins. The rain
	// ranges shadow the snow ranges, so snow codes up to 82 come out as rain.
	PolicyLegacy CategoryPolicy = "legacy"
	// PolicyCodeSet uses explicit membership in WMO code groups.
	PolicyCodeSet CategoryPolicy = "codeset"
)

// WeatherClassification is the display form of a weather code.
type WeatherClassification struct {
	Code        int      `json:"code"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// GetWeatherDescription returns the description for a given weather code
func GetWeatherDescription(code int) string {
	if desc, ok := weatherDescriptions[WeatherCode(code)]; ok {
		return desc
	}
	return UnknownDescription
}

// KnownWeatherCodes returns every code in the description table in ascending order.
func KnownWeatherCodes() []int {
	codes := make([]int, 0, len(weatherDescriptions))
	for code := range weatherDescriptions {
		codes = append(codes, int(code))
	}
	slices.Sort(codes)
	return codes
}

// IsKnownWeatherCode reports whether code appears in the description table.
func IsKnownWeatherCode(code int) bool {
	_, ok := weatherDescriptions[WeatherCode(code)]
	return ok
}

// Classify classifies code with the legacy category policy.
func Classify(code int) WeatherClassification {
	return ClassifyWithPolicy(code, PolicyLegacy)
}

// ClassifyWithPolicy classifies code with the given category policy.
// Codes outside the description table are always CategoryOther.
func ClassifyWithPolicy(code int, policy CategoryPolicy) WeatherClassification {
	c := WeatherClassification{
		Code:        code,
		Description: GetWeatherDescription(code),
		Category:    CategoryOther,
	}
	if !IsKnownWeatherCode(code) {
		return c
	}

	switch policy {
	case PolicyCodeSet:
		c.Category = codeSetCategory(WeatherCode(code))
	default:
		c.Category = legacyCategory(code)
	}
	return c
}

// legacyCategory keeps the original icon precedence, overlapping ranges included.
func legacyCategory(code int) Category {
	if code == 0 {
		return CategoryClear
	}
	if code <= 3 {
		return CategoryCloudy
	}
	if code <= 67 || code <= 82 {
		return CategoryRain
	}
	if code <= 77 || code <= 86 {
		return CategorySnow
	}
	return CategoryCloudy
}

func codeSetCategory(code WeatherCode) Category {
	switch code {
	case ClearSky:
		return CategoryClear
	case MainlyClear, PartlyCloudy, Overcast, Fog, DepositingRimeFog:
		return CategoryCloudy
	case DrizzleLight, DrizzleModerate, DrizzleDense,
		RainSlight, RainModerate, RainHeavy,
		RainShowersSlight, RainShowersModerate, RainShowersViolent,
		Thunderstorm, ThunderstormWithSlightHail, ThunderstormWithHeavyHail:
		return CategoryRain
	case SnowFallSlight, SnowFallModerate, SnowFallHeavy, SnowGrains,
		SnowShowersSlight, SnowShowersHeavy:
		return CategorySnow
	default:
		return CategoryOther
	}
}

// ParseCategoryPolicy returns the policy named by s, defaulting to legacy.
func ParseCategoryPolicy(s string) CategoryPolicy {
	if CategoryPolicy(s) == PolicyCodeSet {
		return PolicyCodeSet
	}
	return PolicyLegacy
}
