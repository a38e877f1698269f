package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/danapr/tumpangan/internal/pkg/models"
)

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(coord models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Coordinate) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// ValidCoordinate reports whether the coordinate is within valid WGS84 bounds
func ValidCoordinate(coord models.Coordinate) bool {
	return coord.Latitude >= -90 && coord.Latitude <= 90 &&
		coord.Longitude >= -180 && coord.Longitude <= 180
}
