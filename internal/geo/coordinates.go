package geo

import (
	"strconv"
	"strings"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) Equal(other Coordinates) bool {
	return c.Latitude == other.Latitude && c.Longitude == other.Longitude
}

// ValidateCoordinates normalizes a raw latitude/longitude pair. It
// returns ok=false for any input that is not a complete, parseable,
// in-range pair: a missing counterpart, a parse failure or an
// out-of-range value all degrade to absence, never to a partial
// result or an error. Profile create, profile update and the
// validate-location endpoint share this exact rule.
func ValidateCoordinates(latRaw, lngRaw string) (Coordinates, bool) {
	latRaw = strings.TrimSpace(latRaw)
	lngRaw = strings.TrimSpace(lngRaw)
	if latRaw == "" || lngRaw == "" {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return Coordinates{}, false
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: lat, Longitude: lng}, true
}
