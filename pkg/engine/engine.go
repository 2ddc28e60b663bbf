package engine

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/engine/routing"
	"github.com/lintang-b-s/osmrouter/pkg/osmparser"
	"github.com/lintang-b-s/osmrouter/pkg/spatialindex"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"go.uber.org/zap"
)

const (
	SNAPPER_RTREE  = "rtree"
	SNAPPER_LINEAR = "linear"
)

type Engine struct {
	graph         *datastructure.Graph
	routingEngine *routing.RoutingEngine
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

// NewEngine parses cfg.MapFile and prepares the routing engine over it.
func NewEngine(ctx context.Context, cfg util.Config, parser *osmparser.OsmParser, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading map from ", zap.String("mapFile", cfg.MapFile))
	graph, err := parser.Parse(ctx, cfg.MapFile)
	if err != nil {
		return nil, err
	}
	return NewEngineFromGraph(graph, cfg, logger)
}

func NewEngineFromGraph(graph *datastructure.Graph, cfg util.Config, logger *zap.Logger) (*Engine, error) {
	if cfg.ConnectivityPrecheck {
		logger.Info("Computing strongly connected components...")
		graph.RunKosaraju()
		logger.Info("Strongly connected components computed.", zap.Int("sccs", graph.NumberOfSCCs()))
	}

	snapper, err := NewSnapper(graph, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Engine{
		graph:         graph,
		routingEngine: routing.NewRoutingEngine(graph, snapper, logger),
	}, nil
}

func NewSnapper(graph *datastructure.Graph, cfg util.Config, logger *zap.Logger) (routing.Snapper, error) {
	switch cfg.Snapper {
	case SNAPPER_RTREE, "":
		rt := spatialindex.NewRtree()
		rt.Build(graph, cfg.RtreeLeafRadiusKm, logger)
		return rt, nil
	case SNAPPER_LINEAR:
		return spatialindex.NewLinearScan(graph), nil
	default:
		return nil, util.WrapErrorf(fmt.Errorf("unknown snapper %q", cfg.Snapper), util.ErrBadParamInput,
			"SNAPPER must be %s or %s", SNAPPER_RTREE, SNAPPER_LINEAR)
	}
}
