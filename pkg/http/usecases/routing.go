package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/concurrent"
	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/engine/routing"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrPathNotFound  = errors.New("no path found")
	ErrEmptyGraph    = errors.New("graph has no vertices")
	ErrBatchTooLarge = errors.New("too many queries in batch")
)

type RouteQuery struct {
	Origin      geo.Coordinate
	Destination geo.Coordinate
	Model       pkg.CostModel
}

func NewRouteQuery(origin, destination geo.Coordinate, model pkg.CostModel) RouteQuery {
	return RouteQuery{Origin: origin, Destination: destination, Model: model}
}

type BatchResult struct {
	Route *routing.Route
	Err   error
}

type GraphInfo struct {
	Vertices    int
	Edges       int
	SCCs        int
	BoundingBox *datastructure.BoundingBox
}

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	connectivity ConnectivityIndex
	stats        GraphStats
	batchWorkers int
	maxBatchSize int
}

// NewRoutingService. connectivity may be nil, then every query runs a full search.
func NewRoutingService(log *zap.Logger, engine RoutingEngine, connectivity ConnectivityIndex, stats GraphStats,
	batchWorkers, maxBatchSize int) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		connectivity: connectivity,
		stats:        stats,
		batchWorkers: batchWorkers,
		maxBatchSize: maxBatchSize,
	}
}

func (rs *RoutingService) ShortestPath(ctx context.Context, query RouteQuery) (*routing.Route, error) {
	if util.StopConcurrentOperation(ctx) {
		return nil, ctx.Err()
	}

	s, ok := rs.engine.Snap(query.Origin)
	if !ok {
		return nil, util.WrapErrorf(ErrEmptyGraph, util.ErrNotFound, "cannot snap %v", query.Origin)
	}
	t, ok := rs.engine.Snap(query.Destination)
	if !ok {
		return nil, util.WrapErrorf(ErrEmptyGraph, util.ErrNotFound, "cannot snap %v", query.Destination)
	}

	// the search accepts any vertex at t's coordinate, so the pre-check does too
	target := rs.engine.GetGraph().GetVertexCoordinate(t)
	if rs.connectivity != nil && rs.connectivity.HasSCCs() && !rs.connectivity.ReachableAt(s, target) {
		rs.log.Debug("target not reachable from source, skipping search",
			zap.Uint32("source", uint32(s)), zap.Uint32("target", uint32(t)))
		return nil, rs.pathNotFound(query)
	}

	route, found := rs.engine.ShortestPathBetween(s, t, query.Model)
	if !found {
		return nil, rs.pathNotFound(query)
	}
	return route, nil
}

func (rs *RoutingService) pathNotFound(query RouteQuery) error {
	return util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no path found from %f,%f to %f,%f",
		query.Origin.Lat, query.Origin.Lon, query.Destination.Lat, query.Destination.Lon)
}

// BatchShortestPath answers every query concurrently over the shared graph. results follow query order,
// a failed query only sets its own BatchResult.Err.
func (rs *RoutingService) BatchShortestPath(ctx context.Context, queries []RouteQuery) ([]BatchResult, error) {
	if rs.maxBatchSize > 0 && len(queries) > rs.maxBatchSize {
		return nil, util.WrapErrorf(ErrBatchTooLarge, util.ErrBadParamInput, "got %d queries, max %d",
			len(queries), rs.maxBatchSize)
	}

	results := concurrent.Map(queries, rs.batchWorkers, func(q RouteQuery) BatchResult {
		route, err := rs.ShortestPath(ctx, q)
		return BatchResult{Route: route, Err: err}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (rs *RoutingService) GraphInfo() GraphInfo {
	info := GraphInfo{
		Vertices:    rs.stats.NumberOfVertices(),
		Edges:       rs.stats.NumberOfEdges(),
		SCCs:        -1,
		BoundingBox: rs.stats.GetBoundingBox(),
	}
	if rs.stats.HasSCCs() {
		info.SCCs = rs.stats.NumberOfSCCs()
	}
	return info
}
