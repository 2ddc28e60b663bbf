package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func ToLineString(coords []Coordinate) orb.LineString {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, orb.Point{c.Lon, c.Lat})
	}
	return ls
}

// RouteFeatureCollection wraps a route path as a geojson LineString feature plus its snapped endpoints.
func RouteFeatureCollection(path []Coordinate, properties map[string]interface{}) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(path) == 0 {
		return fc
	}

	line := geojson.NewFeature(ToLineString(path))
	for k, v := range properties {
		line.Properties[k] = v
	}
	fc.Append(line)

	source := geojson.NewFeature(orb.Point{path[0].Lon, path[0].Lat})
	source.Properties["role"] = "source"
	fc.Append(source)

	target := geojson.NewFeature(orb.Point{path[len(path)-1].Lon, path[len(path)-1].Lat})
	target.Properties["role"] = "target"
	fc.Append(target)
	return fc
}
