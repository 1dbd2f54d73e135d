// Package spatial provides geographic distance helpers shared by the
// navigation engine, the discovery adapter, and the map index.
package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius used for angular→metric conversion.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two points in meters.
func Distance(a, b domain.LatLng) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// PathLength returns the summed great-circle length of an ordered coordinate
// sequence in meters. Used as a straight-line fallback summary when the
// routing provider is unavailable.
func PathLength(points []domain.LatLng) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// BoxAround returns a bounding box that contains the circle of radiusM meters
// centered on p. The box is an over-approximation; callers filtering by exact
// radius should re-check with Distance.
func BoxAround(p domain.LatLng, radiusM float64) domain.BoundingBox {
	latDelta := radiusM / 111000.0
	lonDelta := radiusM / (111000.0 * math.Cos(p.Lat*math.Pi/180))
	return domain.BoundingBox{
		South: p.Lat - latDelta,
		West:  p.Lng - lonDelta,
		North: p.Lat + latDelta,
		East:  p.Lng + lonDelta,
	}
}
