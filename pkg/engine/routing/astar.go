package routing

import (
	"github.com/lintang-b-s/osmrouter/pkg"
	da "github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

// BestFirstSearch. single query state, never shared between goroutines.
// distance model: A* with the straight-line heuristic. time model: uniform-cost search.
type BestFirstSearch struct {
	graph da.RoadGraph
	model pkg.CostModel

	pq       *da.MinHeap[*pathNode]
	expanded []bool

	numSettledNodes int
}

func NewBestFirstSearch(graph da.RoadGraph, model pkg.CostModel) *BestFirstSearch {
	return &BestFirstSearch{
		graph:    graph,
		model:    model,
		pq:       da.NewBinaryHeap[*pathNode](),
		expanded: make([]bool, graph.NumberOfVertices()),
	}
}

func (bs *BestFirstSearch) GetNumSettledNodes() int {
	return bs.numSettledNodes
}

// ShortestPath from s to t. the search stops at the first popped path whose terminal
// coordinate equals t's coordinate.
func (bs *BestFirstSearch) ShortestPath(s, t da.Index) (*pathNode, bool) {
	target := bs.graph.GetVertexCoordinate(t)

	bs.pq.Insert(da.NewPriorityQueueNode(heuristic(bs.model, bs.graph.GetVertexCoordinate(s), target),
		newSourcePathNode(s)))

	for !bs.pq.IsEmpty() {
		item, _ := bs.pq.ExtractMin()
		path := item.GetItem()
		u := path.vertex

		// lazy deletion: older, worse entries of a settled vertex are skipped here
		if bs.expanded[u] {
			continue
		}

		uCoord := bs.graph.GetVertexCoordinate(u)
		if uCoord == target {
			return path, true
		}

		bs.expanded[u] = true
		bs.numSettledNodes++

		bs.graph.ForOutEdgesOf(u, func(e da.OutEdge) {
			v := e.GetHead()
			if bs.expanded[v] {
				return
			}
			vCoord := bs.graph.GetVertexCoordinate(v)

			distance := geo.GreatCircleDistance(uCoord, vCoord)
			next := path.extend(v, edgeCost(bs.model, distance, e.GetSpeed()), distance, distance/e.GetSpeed())

			priority := next.cost + heuristic(bs.model, vCoord, target)
			bs.pq.Insert(da.NewPriorityQueueNode(priority, next))
		})
	}

	return nil, false
}
