package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

func toS2LatLng(c Coordinate) s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// GreatCircleDistance. great-circle distance between a and b in miles.
// this is the only distance used by graph edge costs and the search heuristic.
func GreatCircleDistance(a, b Coordinate) float64 {
	return AngleToMiles(toS2LatLng(a).Distance(toS2LatLng(b)))
}

func AngleToMiles(angle s1.Angle) float64 {
	return angle.Radians() * earthRadiusMiles
}

// PathLength. sum of great-circle distances along path, in miles.
func PathLength(path []Coordinate) float64 {
	length := 0.0
	for i := 1; i < len(path); i++ {
		length += GreatCircleDistance(path[i-1], path[i])
	}
	return length
}
