package datastructure

import (
	"math"

	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
)

type Vertex struct {
	lat      float64
	lon      float64
	osmID    int64
	firstOut Index // index of the first outEdge of this vertex in the flattened graph.outEdges array
}

func NewVertex(lat, lon float64, osmID int64) Vertex {
	return Vertex{
		lat:   lat,
		lon:   lon,
		osmID: osmID,
	}
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetOsmID() int64 {
	return v.osmID
}

// OutEdge. directed road segment to head, speed in miles/hour (always > 0).
type OutEdge struct {
	head  Index
	speed float64
}

func NewOutEdge(head Index, speed float64) OutEdge {
	return OutEdge{head: head, speed: speed}
}

func (e OutEdge) GetHead() Index {
	return e.head
}

func (e OutEdge) GetSpeed() float64 {
	return e.speed
}

// RoadGraph is the read-only view of a built Graph. every query path only sees this interface,
// so a graph shared by concurrent searches can not be mutated through it.
type RoadGraph interface {
	NumberOfVertices() int
	NumberOfEdges() int
	GetVertexCoordinate(u Index) geo.Coordinate
	GetOsmID(u Index) int64
	GetVertexByOsmID(osmID int64) (Index, bool)
	GetVertexAt(c geo.Coordinate) (Index, bool)
	GetOutDegree(u Index) int
	ForOutEdgesOf(u Index, handle func(e OutEdge))
	ForVertices(handle func(u Index, c geo.Coordinate))
}

// Graph. vertices are stored in the order an accepted way first referenced them.
// out edges are flattened: outEdges[vertices[u].firstOut : vertices[u+1].firstOut] are the edges of u,
// in insertion order. vertices has one extra sentinel entry.
type Graph struct {
	vertices   []Vertex
	outEdges   []OutEdge
	coordIndex map[geo.Coordinate]Index
	osmIDIndex map[int64]Index
	bbox       *BoundingBox

	sccs                []Index
	sccCondensationAdj  [][]Index
	sharedCoordVertices map[geo.Coordinate][]Index
}

// NewGraph flattens the per-vertex adjacency lists. len(adj) must equal len(vertices).
// coordIndex is the coordinate -> vertex reverse lookup, if nil it is derived from vertices
// and the vertex with the larger index wins a shared coordinate.
func NewGraph(vertices []Vertex, adj [][]OutEdge, coordIndex map[geo.Coordinate]Index) *Graph {
	n := len(vertices)
	g := &Graph{
		vertices:   make([]Vertex, n+1),
		outEdges:   flatten(adj),
		coordIndex: coordIndex,
		osmIDIndex: make(map[int64]Index, n),
	}
	deriveCoordIndex := coordIndex == nil
	if deriveCoordIndex {
		g.coordIndex = make(map[geo.Coordinate]Index, n)
	}

	offset := Index(0)
	for u := 0; u < n; u++ {
		g.vertices[u] = vertices[u]
		g.vertices[u].firstOut = offset
		offset += Index(len(adj[u]))

		g.osmIDIndex[vertices[u].osmID] = Index(u)
		if deriveCoordIndex {
			g.coordIndex[geo.NewCoordinate(vertices[u].lat, vertices[u].lon)] = Index(u)
		}
	}
	g.vertices[n] = NewVertex(0, 0, -1)
	g.vertices[n].firstOut = offset

	g.bbox = computeBoundingBox(vertices)
	return g
}

func flatten[T any](container [][]T) []T {
	finalSize := 0
	for _, part := range container {
		finalSize += len(part)
	}

	result := make([]T, 0, finalSize)
	for _, part := range container {
		result = append(result, part...)
	}
	return result
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices) - 1
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) GetVertexCoordinate(u Index) geo.Coordinate {
	return geo.NewCoordinate(g.vertices[u].lat, g.vertices[u].lon)
}

func (g *Graph) GetOsmID(u Index) int64 {
	return g.vertices[u].osmID
}

func (g *Graph) GetVertexByOsmID(osmID int64) (Index, bool) {
	u, ok := g.osmIDIndex[osmID]
	return u, ok
}

// GetVertexAt. exact coordinate -> vertex lookup.
func (g *Graph) GetVertexAt(c geo.Coordinate) (Index, bool) {
	u, ok := g.coordIndex[c]
	return u, ok
}

func (g *Graph) GetOutDegree(u Index) int {
	return int(g.vertices[u+1].firstOut - g.vertices[u].firstOut)
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e OutEdge)) {
	for e := g.vertices[u].firstOut; e < g.vertices[u+1].firstOut; e++ {
		handle(g.outEdges[e])
	}
}

// ForVertices visits vertices in index order.
func (g *Graph) ForVertices(handle func(u Index, c geo.Coordinate)) {
	for u := 0; u < g.NumberOfVertices(); u++ {
		handle(Index(u), g.GetVertexCoordinate(Index(u)))
	}
}

func (g *Graph) GetBoundingBox() *BoundingBox {
	return g.bbox
}
