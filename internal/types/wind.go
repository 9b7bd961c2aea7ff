package types

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

type Wind struct {
	SpeedInKph        float64
	DirectionDegrees  float64
	DirectionCardinal string
}

func NewWindFromKph(speedInKph, directionDegrees float64) Wind {
	return Wind{
		SpeedInKph:        speedInKph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: CardinalDirection(directionDegrees),
	}
}

// CardinalDirection maps degrees to one of 16 compass points.
func CardinalDirection(degrees float64) string {
	direction := (degrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}
	return cardinalDirections[index]
}
