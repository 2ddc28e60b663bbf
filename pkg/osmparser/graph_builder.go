package osmparser

import (
	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"go.uber.org/zap"
)

// GraphBuilder. streams way records then node records into a routable graph.
// all AddWay calls must come before the AddNode calls: a node record is kept only if an
// accepted way already referenced it.
type GraphBuilder struct {
	nodeIDMap  map[int64]datastructure.Index // osm node id -> vertex, assigned on first reference
	osmIDs     []int64
	adj        [][]datastructure.OutEdge
	coords     []geo.Coordinate
	resolved   []bool
	coordIndex map[geo.Coordinate]datastructure.Index
	firstRefBy []int64 // way that first referenced each vertex, for error messages

	stats  BuildStats
	err    error
	logger *zap.Logger
}

func NewGraphBuilder(logger *zap.Logger) *GraphBuilder {
	return &GraphBuilder{
		nodeIDMap:  make(map[int64]datastructure.Index),
		osmIDs:     make([]int64, 0),
		adj:        make([][]datastructure.OutEdge, 0),
		coordIndex: make(map[geo.Coordinate]datastructure.Index),
		firstRefBy: make([]int64, 0),
		logger:     logger,
	}
}

func (b *GraphBuilder) vertexOf(osmID, wayID int64) datastructure.Index {
	if u, ok := b.nodeIDMap[osmID]; ok {
		return u
	}
	u := datastructure.Index(len(b.osmIDs))
	b.nodeIDMap[osmID] = u
	b.osmIDs = append(b.osmIDs, osmID)
	b.adj = append(b.adj, nil)
	b.firstRefBy = append(b.firstRefBy, wayID)
	return u
}

// AddWay. ways with a highway type outside the allow-list, or with fewer than two nodes, are ignored.
// an accepted way adds node[i] -> node[i+1] for every consecutive pair, then unless it is one-way
// the same pairs again walking the reversed node list, all with the way's speed.
func (b *GraphBuilder) AddWay(way WayRecord) error {
	if !way.Tags.Highway.IsRoutable() || len(way.Nodes) < 2 {
		b.stats.IgnoredWays++
		return nil
	}
	// 0 means no maxspeed tag
	if way.Tags.MaxSpeedMph != 0 && !isValidSpeed(way.Tags.MaxSpeedMph) {
		err := util.WrapErrorf(ErrInvalidSpeed, util.ErrDataIntegrity, "way %d has maxspeed %v mph", way.ID,
			way.Tags.MaxSpeedMph)
		b.recordErr(err)
		return err
	}

	speed := way.Tags.SpeedMph()
	b.stats.AcceptedWays++

	wayVertices := make([]datastructure.Index, len(way.Nodes))
	for i, osmID := range way.Nodes {
		wayVertices[i] = b.vertexOf(osmID, way.ID)
	}

	for i := 0; i+1 < len(wayVertices); i++ {
		u, v := wayVertices[i], wayVertices[i+1]
		b.adj[u] = append(b.adj[u], datastructure.NewOutEdge(v, speed))
	}

	if way.Tags.OneWay {
		return nil
	}

	reversed := util.ReverseG(wayVertices)
	for i := 0; i+1 < len(reversed); i++ {
		u, v := reversed[i], reversed[i+1]
		b.adj[u] = append(b.adj[u], datastructure.NewOutEdge(v, speed))
	}
	return nil
}

// AddNode. records the coordinate of a node referenced by an accepted way. a later record of the
// same coordinate takes over the coordinate -> vertex reverse lookup.
func (b *GraphBuilder) AddNode(node NodeRecord) {
	b.stats.ScannedNodes++
	u, ok := b.nodeIDMap[node.ID]
	if !ok {
		return
	}
	if b.coords == nil {
		b.coords = make([]geo.Coordinate, len(b.osmIDs))
		b.resolved = make([]bool, len(b.osmIDs))
	}
	if int(u) >= len(b.coords) {
		// a way arrived after the first node record
		b.coords = append(b.coords, make([]geo.Coordinate, len(b.osmIDs)-len(b.coords))...)
		b.resolved = append(b.resolved, make([]bool, len(b.osmIDs)-len(b.resolved))...)
	}
	if !b.resolved[u] {
		b.stats.KeptNodes++
	}
	c := geo.NewCoordinate(node.Lat, node.Lon)
	if b.resolved[u] && b.coords[u] != c && b.coordIndex[b.coords[u]] == u {
		delete(b.coordIndex, b.coords[u])
	}
	b.coords[u] = c
	b.resolved[u] = true
	b.coordIndex[c] = u
}

func (b *GraphBuilder) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *GraphBuilder) Stats() BuildStats {
	return b.stats
}

// Build. fails with a util.ErrDataIntegrity coded error if an accepted way had an invalid speed
// or referenced a node that never got a node record.
func (b *GraphBuilder) Build() (*datastructure.Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	n := len(b.osmIDs)
	vertices := make([]datastructure.Vertex, n)
	for u := 0; u < n; u++ {
		if u >= len(b.resolved) || !b.resolved[u] {
			return nil, util.WrapErrorf(ErrUnknownNode, util.ErrDataIntegrity, "node %d referenced by way %d",
				b.osmIDs[u], b.firstRefBy[u])
		}
		vertices[u] = datastructure.NewVertex(b.coords[u].GetLat(), b.coords[u].GetLon(), b.osmIDs[u])
	}

	graph := datastructure.NewGraph(vertices, b.adj, b.coordIndex)

	if b.logger != nil {
		b.logger.Sugar().Infof("accepted ways: %d, ignored ways: %d", b.stats.AcceptedWays, b.stats.IgnoredWays)
		b.logger.Sugar().Infof("number of vertices: %v", graph.NumberOfVertices())
		b.logger.Sugar().Infof("number of edges: %v", graph.NumberOfEdges())
	}
	return graph, nil
}

// BuildGraph builds a graph from in-memory records, ways first then nodes.
func BuildGraph(nodes []NodeRecord, ways []WayRecord, logger *zap.Logger) (*datastructure.Graph, error) {
	b := NewGraphBuilder(logger)
	for _, w := range ways {
		if err := b.AddWay(w); err != nil {
			return nil, err
		}
	}
	for _, nd := range nodes {
		b.AddNode(nd)
	}
	return b.Build()
}
