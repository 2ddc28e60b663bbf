package datastructure

import (
	"slices"

	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

// RunKosaraju. runs kosaraju's algorithm to find strongly connected components (SCCs) of the road graph
// and builds the condensation graph (a DAG of SCCs) used by Reachable and ReachableAt.
func (g *Graph) RunKosaraju() {
	n := g.NumberOfVertices()

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		if !visited[v] {
			g.dfsPostOrder(Index(v), &order, visited)
		}
	}

	order = slices.Clone(order)
	slices.Reverse(order)

	inAdj := g.reversedAdjacency()

	sccs := make([]Index, n)
	for i := range sccs {
		sccs[i] = INVALID_VERTEX_ID
	}

	numComponents := Index(0)
	stack := make([]Index, 0, 64)
	for _, root := range order {
		if sccs[root] != INVALID_VERTEX_ID {
			continue
		}
		// every vertex reached from root in the transposed graph that is not yet assigned belongs to root's SCC
		sccs[root] = numComponents
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range inAdj[u] {
				if sccs[w] == INVALID_VERTEX_ID {
					sccs[w] = numComponents
					stack = append(stack, w)
				}
			}
		}
		numComponents++
	}

	condAdj := make([][]Index, numComponents)
	for u := 0; u < n; u++ {
		g.ForOutEdgesOf(Index(u), func(e OutEdge) {
			if sccs[u] != sccs[e.head] {
				condAdj[sccs[u]] = append(condAdj[sccs[u]], sccs[e.head])
			}
		})
	}
	for c := range condAdj {
		slices.Sort(condAdj[c])
		condAdj[c] = slices.Compact(condAdj[c])
	}

	g.sccs = sccs
	g.sccCondensationAdj = condAdj
	g.sharedCoordVertices = g.groupSharedCoordinates()
}

// groupSharedCoordinates. coordinate -> vertices, only for coordinates held by more than one vertex.
func (g *Graph) groupSharedCoordinates() map[geo.Coordinate][]Index {
	byCoord := make(map[geo.Coordinate][]Index)
	g.ForVertices(func(u Index, c geo.Coordinate) {
		byCoord[c] = append(byCoord[c], u)
	})
	for c, vs := range byCoord {
		if len(vs) < 2 {
			delete(byCoord, c)
		}
	}
	return byCoord
}

// dfsPostOrder. iterative dfs, appends vertices to output once all of their descendants are finished.
func (g *Graph) dfsPostOrder(s Index, output *[]Index, visited []bool) {
	type frame struct {
		v    Index
		next Index // next out edge position to explore
	}

	visited[s] = true
	stack := []frame{{v: s, next: g.vertices[s].firstOut}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < g.vertices[top.v+1].firstOut {
			w := g.outEdges[top.next].head
			top.next++
			if !visited[w] {
				visited[w] = true
				stack = append(stack, frame{v: w, next: g.vertices[w].firstOut})
			}
			continue
		}
		*output = append(*output, top.v)
		stack = stack[:len(stack)-1]
	}
}

func (g *Graph) reversedAdjacency() [][]Index {
	inAdj := make([][]Index, g.NumberOfVertices())
	for u := 0; u < g.NumberOfVertices(); u++ {
		g.ForOutEdgesOf(Index(u), func(e OutEdge) {
			inAdj[e.head] = append(inAdj[e.head], Index(u))
		})
	}
	return inAdj
}

func (g *Graph) HasSCCs() bool {
	return g.sccs != nil || g.NumberOfVertices() == 0
}

func (g *Graph) NumberOfSCCs() int {
	return len(g.sccCondensationAdj)
}

func (g *Graph) GetSCCOfAVertex(u Index) Index {
	return g.sccs[u]
}

// Reachable reports whether a directed path u -> v exists. RunKosaraju must have been called.
func (g *Graph) Reachable(u, v Index) bool {
	sccOfU := g.sccs[u]
	sccOfV := g.sccs[v]
	if sccOfU == sccOfV {
		return true
	}
	return g.condensationGraphOriginToDestinationConnected(sccOfU, sccOfV)
}

// ReachableAt reports whether a directed path from u reaches any vertex located at c.
// the search stops at the first settled vertex with the target coordinate, so every vertex
// sharing that coordinate counts as the target. RunKosaraju must have been called.
func (g *Graph) ReachableAt(u Index, c geo.Coordinate) bool {
	if vs, ok := g.sharedCoordVertices[c]; ok {
		for _, v := range vs {
			if g.Reachable(u, v) {
				return true
			}
		}
		return false
	}
	v, ok := g.coordIndex[c]
	return ok && g.Reachable(u, v)
}

func (g *Graph) condensationGraphOriginToDestinationConnected(from, to Index) bool {
	visited := make(map[Index]struct{})
	stack := []Index{from}
	visited[from] = struct{}{}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.sccCondensationAdj[c] {
			if next == to {
				return true
			}
			if _, ok := visited[next]; !ok {
				visited[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return false
}
