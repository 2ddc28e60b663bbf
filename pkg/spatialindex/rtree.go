package spatialindex

import (
	"math"

	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// relative slack on the candidate radius so the candidate itself survives rounding in the box bounds.
const radiusSlack = 1e-9

// Rtree. r-tree over graph vertices, leaf boxes are [lon, lat].
type Rtree struct {
	tr    *rtree.RTreeG[datastructure.Index]
	graph datastructure.RoadGraph
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree, with each leaf having bounding box with radius boundingBoxRadius (in km).
// boundingBoxRadius 0 stores every vertex as a point.
func (rt *Rtree) Build(graph datastructure.RoadGraph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	rt.graph = graph

	n := graph.NumberOfVertices()
	step := max(n/10, 1)
	graph.ForVertices(func(u datastructure.Index, c geo.Coordinate) {
		if int(u)%step == 0 && u > 0 {
			log.Info("Building R-tree spatial index...", zap.Float64("progress", 100*float64(u)/float64(n)))
		}

		if boundingBoxRadius <= 0 {
			p := [2]float64{c.GetLon(), c.GetLat()}
			rt.tr.Insert(p, p, u)
			return
		}

		lowerLat, lowerLon := geo.GetDestinationPoint(c.GetLat(), c.GetLon(), 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(c.GetLat(), c.GetLon(), 45, boundingBoxRadius)
		rt.tr.Insert([2]float64{math.Min(lowerLon, c.GetLon()), math.Min(lowerLat, c.GetLat())},
			[2]float64{math.Max(upperLon, c.GetLon()), math.Max(upperLat, c.GetLat())}, u)
	})

	log.Info("R-tree spatial index built.", zap.Int("vertices", rt.tr.Len()))
}

// Nearest returns a vertex with the minimum great-circle distance to q.
// the planar nearest leaf gives an upper bound d on that distance, every vertex within d of q
// lies inside BoundingBoxAround(q, d), so an exact scan of that box finds the true minimum.
// equal distances resolve to the lowest vertex index.
func (rt *Rtree) Nearest(q geo.Coordinate) (datastructure.Index, bool) {
	if rt.graph == nil || rt.tr.Len() == 0 {
		return datastructure.INVALID_VERTEX_ID, false
	}

	qp := [2]float64{q.GetLon(), q.GetLat()}
	candidate := datastructure.INVALID_VERTEX_ID
	rt.tr.Nearby(rtree.BoxDist[float64, datastructure.Index](qp, qp, nil),
		func(min, max [2]float64, data datastructure.Index, dist float64) bool {
			candidate = data
			return false
		})
	if candidate == datastructure.INVALID_VERTEX_ID {
		return candidate, false
	}

	best := candidate
	bestDist := geo.GreatCircleDistance(q, rt.graph.GetVertexCoordinate(candidate))

	radius := bestDist*(1+radiusSlack) + radiusSlack
	minLat, minLon, maxLat, maxLon := geo.BoundingBoxAround(q, radius)
	rt.tr.Search([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
		func(min, max [2]float64, u datastructure.Index) bool {
			d := geo.GreatCircleDistance(q, rt.graph.GetVertexCoordinate(u))
			if d < bestDist || (d == bestDist && u < best) {
				best = u
				bestDist = d
			}
			return true
		})
	return best, true
}

// SearchWithinRadius returns the vertices whose great-circle distance to q is at most radius (in miles).
func (rt *Rtree) SearchWithinRadius(q geo.Coordinate, radius float64) []datastructure.Index {
	results := make([]datastructure.Index, 0, 10)
	if rt.graph == nil {
		return results
	}
	minLat, minLon, maxLat, maxLon := geo.BoundingBoxAround(q, radius)
	rt.tr.Search([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
		func(min, max [2]float64, u datastructure.Index) bool {
			if geo.GreatCircleDistance(q, rt.graph.GetVertexCoordinate(u)) <= radius {
				results = append(results, u)
			}
			return true
		})
	return results
}
