// Package geo provides great-circle distance calculations for
// proximity checks between vendors and clients.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between two points
// using the haversine formula. Points carry (lon, lat) in degrees.
//
// The function is deterministic and side-effect-free. NaN coordinates
// propagate NaN; callers that need well-formed input must validate upstream.
func Distance(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}
