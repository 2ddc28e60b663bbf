package spatialindex

import (
	"math"

	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

// LinearScan snaps by checking every vertex, O(|V|) per query.
// vertices are visited in index order and the first minimum wins.
type LinearScan struct {
	graph datastructure.RoadGraph
}

func NewLinearScan(graph datastructure.RoadGraph) *LinearScan {
	return &LinearScan{graph: graph}
}

// Nearest. false only for an empty graph.
func (ls *LinearScan) Nearest(q geo.Coordinate) (datastructure.Index, bool) {
	best := datastructure.INVALID_VERTEX_ID
	bestDist := math.Inf(1)
	ls.graph.ForVertices(func(u datastructure.Index, c geo.Coordinate) {
		d := geo.GreatCircleDistance(q, c)
		if d < bestDist {
			bestDist = d
			best = u
		}
	})
	return best, best != datastructure.INVALID_VERTEX_ID
}
