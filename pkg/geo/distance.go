package geo

import (
	"math"

	"github.com/lintang-b-s/osmrouter/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

// 16 byte (128bit)

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM    = 6371.0
	earthRadiusMiles = earthRadiusKM / 1.609344
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

func KmToMiles(km float64) float64 {
	return km * earthRadiusMiles / earthRadiusKM
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return util.RadiansToDegree(lat2), normalizeLongitude(util.RadiansToDegree(lon2))
}

// BoundingBoxAround returns a lat/lon box containing every point whose great-circle distance to c is at most radiusMiles.
// http://janmatuschek.de/LatitudeLongitudeBoundingCoordinates
// the box spans all longitudes when it would touch a pole or cross the antimeridian.
func BoundingBoxAround(c Coordinate, radiusMiles float64) (minLat, minLon, maxLat, maxLon float64) {
	r := radiusMiles / earthRadiusMiles
	lat := util.DegreeToRadians(c.Lat)
	lon := util.DegreeToRadians(c.Lon)

	minLatRad := lat - r
	maxLatRad := lat + r
	if minLatRad <= -math.Pi/2 || maxLatRad >= math.Pi/2 || r >= math.Pi/2 {
		minLatRad = util.Clamp(minLatRad, -math.Pi/2, math.Pi/2)
		maxLatRad = util.Clamp(maxLatRad, -math.Pi/2, math.Pi/2)
		return util.RadiansToDegree(minLatRad), -180, util.RadiansToDegree(maxLatRad), 180
	}

	dLon := math.Asin(math.Sin(r) / math.Cos(lat))
	minLonRad := lon - dLon
	maxLonRad := lon + dLon
	if minLonRad < -math.Pi || maxLonRad > math.Pi {
		return util.RadiansToDegree(minLatRad), -180, util.RadiansToDegree(maxLatRad), 180
	}

	return util.RadiansToDegree(minLatRad), util.RadiansToDegree(minLonRad),
		util.RadiansToDegree(maxLatRad), util.RadiansToDegree(maxLonRad)
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}
