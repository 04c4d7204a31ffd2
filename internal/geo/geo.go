package geo

import (
	"errors"
	"math"
)

const earthRadiusKM = 6371.0

var ErrOutOfRange = errors.New("coordinates out of range")

// HaversineKM returns the great-circle distance in kilometers between
// two coordinates given in degrees. Identical coordinates yield 0.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

// ValidateCoordinates rejects NaN/Inf and values outside the valid
// latitude/longitude ranges.
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return ErrOutOfRange
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrOutOfRange
	}
	return nil
}

// RoundKM rounds a distance to one decimal place for presentation.
func RoundKM(km float64) float64 {
	return math.Round(km*10) / 10
}
