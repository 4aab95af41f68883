package geo

import (
	"github.com/golang/geo/s2"

	"github.com/bitmark-inc/healthradar-api/schema"
)

const EarthRadiusKm = 6371.0088

// GroundDistanceKm returns the great-circle distance between two points.
func GroundDistanceKm(a, b schema.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude(), a.Longitude())
	p2 := s2.LatLngFromDegrees(b.Latitude(), b.Longitude())
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// RadiusKm is the ground length of a sampling radius given in degrees,
// measured north of center where a degree has nearly constant length.
func RadiusKm(center schema.GeoPoint, radius float64) float64 {
	return GroundDistanceKm(center, schema.GeoPoint{center.Longitude(), center.Latitude() + radius})
}
