package osmparser

import (
	"math"
	"testing"

	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/lintang-b-s/osmrouter/pkg/logger"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEdge struct {
	from, to int64
	speed    float64
}

func edgesOf(g *datastructure.Graph) []testEdge {
	edges := make([]testEdge, 0, g.NumberOfEdges())
	g.ForVertices(func(u datastructure.Index, _ geo.Coordinate) {
		g.ForOutEdgesOf(u, func(e datastructure.OutEdge) {
			edges = append(edges, testEdge{from: g.GetOsmID(u), to: g.GetOsmID(e.GetHead()), speed: e.GetSpeed()})
		})
	})
	return edges
}

func testNodes() []NodeRecord {
	return []NodeRecord{
		NewNodeRecord(1, 0.000, 0.000),
		NewNodeRecord(2, 0.000, 0.010),
		NewNodeRecord(3, 0.000, 0.020),
		NewNodeRecord(4, 0.010, 0.010),
		NewNodeRecord(99, 1.000, 1.000),
	}
}

func TestBuildGraphEdges(t *testing.T) {
	testCases := []struct {
		name      string
		ways      []WayRecord
		wantEdges []testEdge
		wantNodes []int64
	}{
		{
			name: "bidirectional way mirrors every edge",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2, 3}, NewWayTags(pkg.PRIMARY, 0, false)),
			},
			wantEdges: []testEdge{
				{1, 2, 35}, {2, 3, 35}, {3, 2, 35}, {2, 1, 35},
			},
			wantNodes: []int64{1, 2, 3},
		},
		{
			name: "one-way way has no reverse edges",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2, 3}, NewWayTags(pkg.MOTORWAY, 0, true)),
			},
			wantEdges: []testEdge{
				{1, 2, 60}, {2, 3, 60},
			},
			wantNodes: []int64{1, 2, 3},
		},
		{
			name: "explicit maxspeed wins over the default",
			ways: []WayRecord{
				NewWayRecord(10, []int64{2, 4}, NewWayTags(pkg.RESIDENTIAL, 15, false)),
			},
			wantEdges: []testEdge{
				{2, 4, 15}, {4, 2, 15},
			},
			wantNodes: []int64{2, 4},
		},
		{
			name: "ignored highway types contribute nothing",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.UNKNOWN, 0, false)),
				NewWayRecord(11, []int64{2, 4}, NewWayTags(pkg.LIVING_STREET, 0, true)),
			},
			wantEdges: []testEdge{
				{2, 4, 10},
			},
			wantNodes: []int64{2, 4},
		},
		{
			name: "ways with fewer than two nodes contribute nothing",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1}, NewWayTags(pkg.PRIMARY, 0, false)),
			},
			wantEdges: []testEdge{},
			wantNodes: []int64{},
		},
		{
			name: "duplicate ways keep duplicate edges",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.TRUNK, 0, true)),
				NewWayRecord(11, []int64{1, 2}, NewWayTags(pkg.TRUNK_LINK, 0, true)),
			},
			wantEdges: []testEdge{
				{1, 2, 45}, {1, 2, 30},
			},
			wantNodes: []int64{1, 2},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(testNodes(), tt.ways, logger.NewNop())
			require.NoError(t, err)

			assert.ElementsMatch(t, tt.wantEdges, edgesOf(g))

			gotNodes := make([]int64, 0)
			g.ForVertices(func(u datastructure.Index, _ geo.Coordinate) {
				gotNodes = append(gotNodes, g.GetOsmID(u))
			})
			assert.Equal(t, tt.wantNodes, gotNodes)

			_, ok := g.GetVertexByOsmID(99)
			assert.False(t, ok, "unreferenced nodes are not kept")
		})
	}
}

func TestBuildGraphMirrorProperty(t *testing.T) {
	ways := []WayRecord{
		NewWayRecord(10, []int64{1, 2, 3}, NewWayTags(pkg.SECONDARY, 0, false)),
		NewWayRecord(11, []int64{3, 4, 1}, NewWayTags(pkg.TERTIARY, 20, false)),
	}
	g, err := BuildGraph(testNodes(), ways, logger.NewNop())
	require.NoError(t, err)

	edges := edgesOf(g)
	count := make(map[testEdge]int)
	for _, e := range edges {
		count[e]++
	}
	for _, e := range edges {
		mirror := testEdge{from: e.to, to: e.from, speed: e.speed}
		assert.Equal(t, count[e], count[mirror], "edge %v must have a mirrored edge", e)
	}
}

func TestBuildGraphReverseLookup(t *testing.T) {
	nodes := []NodeRecord{
		NewNodeRecord(1, 0, 0),
		NewNodeRecord(2, 0, 0.01),
		NewNodeRecord(3, 0, 0.01),
	}
	ways := []WayRecord{
		NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.PRIMARY, 0, false)),
		NewWayRecord(11, []int64{3, 1}, NewWayTags(pkg.PRIMARY, 0, false)),
	}
	g, err := BuildGraph(nodes, ways, logger.NewNop())
	require.NoError(t, err)

	u, ok := g.GetVertexAt(geo.NewCoordinate(0, 0))
	require.True(t, ok)
	assert.Equal(t, int64(1), g.GetOsmID(u))

	// nodes 2 and 3 share a coordinate, the later node record wins
	u, ok = g.GetVertexAt(geo.NewCoordinate(0, 0.01))
	require.True(t, ok)
	assert.Equal(t, int64(3), g.GetOsmID(u))
}

func TestBuildGraphRepeatedNodeRecordMovesLookup(t *testing.T) {
	nodes := []NodeRecord{
		NewNodeRecord(1, 0, 0),
		NewNodeRecord(2, 0, 0.01),
		NewNodeRecord(2, 0, 0.02),
	}
	ways := []WayRecord{
		NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.PRIMARY, 0, false)),
	}
	g, err := BuildGraph(nodes, ways, logger.NewNop())
	require.NoError(t, err)

	_, ok := g.GetVertexAt(geo.NewCoordinate(0, 0.01))
	assert.False(t, ok)
	u, ok := g.GetVertexAt(geo.NewCoordinate(0, 0.02))
	require.True(t, ok)
	assert.Equal(t, int64(2), g.GetOsmID(u))
	assert.Equal(t, geo.NewCoordinate(0, 0.02), g.GetVertexCoordinate(u))
}

func TestBuildGraphDataIntegrity(t *testing.T) {
	testCases := []struct {
		name    string
		ways    []WayRecord
		wantErr error
	}{
		{
			name: "way references a node without a record",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2, 1234}, NewWayTags(pkg.PRIMARY, 0, false)),
			},
			wantErr: ErrUnknownNode,
		},
		{
			name: "negative maxspeed",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.PRIMARY, -5, false)),
			},
			wantErr: ErrInvalidSpeed,
		},
		{
			name: "NaN maxspeed",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.PRIMARY, math.NaN(), false)),
			},
			wantErr: ErrInvalidSpeed,
		},
		{
			name: "infinite maxspeed",
			ways: []WayRecord{
				NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.PRIMARY, math.Inf(1), false)),
			},
			wantErr: ErrInvalidSpeed,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(testNodes(), tt.ways, logger.NewNop())
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, util.ErrorCode(err), util.ErrDataIntegrity)
		})
	}
}

func TestBuildGraphIgnoresUnknownNodeOnIgnoredWay(t *testing.T) {
	ways := []WayRecord{
		NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.PRIMARY, 0, false)),
		NewWayRecord(11, []int64{2, 1234}, NewWayTags(pkg.UNKNOWN, 0, false)),
	}
	g, err := BuildGraph(testNodes(), ways, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumberOfVertices())
}

func TestBuildGraphEmpty(t *testing.T) {
	g, err := BuildGraph(nil, nil, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumberOfVertices())
}

func TestGraphBuilderStats(t *testing.T) {
	b := NewGraphBuilder(logger.NewNop())
	require.NoError(t, b.AddWay(NewWayRecord(10, []int64{1, 2}, NewWayTags(pkg.PRIMARY, 0, false))))
	require.NoError(t, b.AddWay(NewWayRecord(11, []int64{1, 2}, NewWayTags(pkg.UNKNOWN, 0, false))))
	for _, n := range testNodes() {
		b.AddNode(n)
	}
	_, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, BuildStats{AcceptedWays: 1, IgnoredWays: 1, ScannedNodes: 5, KeptNodes: 2}, b.Stats())
}
