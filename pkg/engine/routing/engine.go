package routing

import (
	"github.com/lintang-b-s/osmrouter/pkg"
	da "github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"go.uber.org/zap"
)

type Route struct {
	Path              []geo.Coordinate
	Vertices          []da.Index
	Model             pkg.CostModel
	Cost              float64 // miles for the distance model, hours for the time model
	DistanceMiles     float64
	TravelTimeMinutes float64
	SettledNodes      int
	SourceOsmID       int64
	TargetOsmID       int64
}

// RoutingEngine. holds the read-only graph shared by every query, ShortestPath is safe for concurrent use.
type RoutingEngine struct {
	graph   da.RoadGraph
	snapper Snapper
	logger  *zap.Logger
}

func NewRoutingEngine(graph da.RoadGraph, snapper Snapper, logger *zap.Logger) *RoutingEngine {
	return &RoutingEngine{
		graph:   graph,
		snapper: snapper,
		logger:  logger,
	}
}

func (re *RoutingEngine) GetGraph() da.RoadGraph {
	return re.graph
}

// Snap. nearest vertex of q, false for an empty graph.
func (re *RoutingEngine) Snap(q geo.Coordinate) (da.Index, bool) {
	if re.graph.NumberOfVertices() == 0 {
		return da.INVALID_VERTEX_ID, false
	}
	return re.snapper.Nearest(q)
}

// ShortestPath snaps src & dst to their nearest vertices and searches between them.
// false means no path: an empty graph or dst unreachable from src.
func (re *RoutingEngine) ShortestPath(src, dst geo.Coordinate, model pkg.CostModel) (*Route, bool) {
	s, ok := re.Snap(src)
	if !ok {
		return nil, false
	}
	t, ok := re.Snap(dst)
	if !ok {
		return nil, false
	}
	return re.ShortestPathBetween(s, t, model)
}

func (re *RoutingEngine) ShortestPathBetween(s, t da.Index, model pkg.CostModel) (*Route, bool) {
	n := re.graph.NumberOfVertices()
	if int(s) >= n || int(t) >= n {
		return nil, false
	}

	search := NewBestFirstSearch(re.graph, model)
	path, found := search.ShortestPath(s, t)

	re.logger.Debug("search finished", zap.Uint32("source", uint32(s)), zap.Uint32("target", uint32(t)),
		zap.String("model", model.String()), zap.Bool("found", found),
		zap.Int("settled", search.GetNumSettledNodes()))

	if !found {
		return nil, false
	}

	return &Route{
		Path:              path.coordinates(re.graph),
		Vertices:          path.vertices(),
		Model:             model,
		Cost:              path.cost,
		DistanceMiles:     path.distance,
		TravelTimeMinutes: path.hours * pkg.MINUTES_PER_H,
		SettledNodes:      search.GetNumSettledNodes(),
		SourceOsmID:       re.graph.GetOsmID(s),
		TargetOsmID:       re.graph.GetOsmID(path.vertex),
	}, true
}
