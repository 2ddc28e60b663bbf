package routing

import (
	da "github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

// pathNode. the terminal vertex of a partial path on the agenda. partial paths share their
// prefixes through parent, so pushing an extended path is O(1).
type pathNode struct {
	vertex   da.Index
	parent   *pathNode
	cost     float64 // accumulated cost under the search's cost model
	distance float64 // miles
	hours    float64
	length   int
}

func newSourcePathNode(s da.Index) *pathNode {
	return &pathNode{vertex: s, length: 1}
}

func (p *pathNode) extend(v da.Index, cost, distance, hours float64) *pathNode {
	return &pathNode{
		vertex:   v,
		parent:   p,
		cost:     p.cost + cost,
		distance: p.distance + distance,
		hours:    p.hours + hours,
		length:   p.length + 1,
	}
}

// vertices materialises the path, source first.
func (p *pathNode) vertices() []da.Index {
	path := make([]da.Index, p.length)
	i := p.length - 1
	for cur := p; cur != nil; cur = cur.parent {
		path[i] = cur.vertex
		i--
	}
	return path
}

func (p *pathNode) coordinates(graph da.RoadGraph) []geo.Coordinate {
	vertices := p.vertices()
	coords := make([]geo.Coordinate, len(vertices))
	for i, u := range vertices {
		coords[i] = graph.GetVertexCoordinate(u)
	}
	return coords
}
