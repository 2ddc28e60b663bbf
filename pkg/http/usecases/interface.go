package usecases

import (
	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/engine/routing"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

type RoutingEngine interface {
	GetGraph() datastructure.RoadGraph
	Snap(q geo.Coordinate) (datastructure.Index, bool)
	ShortestPathBetween(s, t datastructure.Index, model pkg.CostModel) (*routing.Route, bool)
}

// ConnectivityIndex. answers reachability without running a search.
type ConnectivityIndex interface {
	HasSCCs() bool
	ReachableAt(u datastructure.Index, c geo.Coordinate) bool
}

type GraphStats interface {
	NumberOfVertices() int
	NumberOfEdges() int
	NumberOfSCCs() int
	HasSCCs() bool
	GetBoundingBox() *datastructure.BoundingBox
}
