package datastructure

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphFromAdjacency(adj [][]Index) *Graph {
	vertices := make([]Vertex, len(adj))
	out := make([][]OutEdge, len(adj))
	for u := range adj {
		vertices[u] = NewVertex(float64(u)*0.001, 0, int64(u))
		for _, v := range adj[u] {
			out[u] = append(out[u], NewOutEdge(v, 30))
		}
	}
	return NewGraph(vertices, out, nil)
}

// i -> j when j understands the language i speaks, the largest group that can all talk to each other is the
// largest SCC.
func TestKosarajuLargestConversationGroup(t *testing.T) {
	characters := []string{
		"Jabba Huttese",
		"Bib Huttese Basic",
		"Boba Basic Huttese",
		"Chewbacca Shyriiwook Basic",
		"Luke Basic Jawaese Binary",
		"Grakchawwaa Shyriiwook Basic Jawaese",
		"R2D2 BinaryCode Jawaese",
	}

	speaks := make([]string, len(characters))
	understands := make([]map[string]bool, len(characters))
	for i, c := range characters {
		ff := strings.Fields(c)
		speaks[i] = ff[1]
		understands[i] = map[string]bool{ff[1]: true}
		for _, lang := range ff[2:] {
			understands[i][lang] = true
		}
	}

	adj := make([][]Index, len(characters))
	for i := range characters {
		for j := range characters {
			if i != j && understands[j][speaks[i]] {
				adj[i] = append(adj[i], Index(j))
			}
		}
	}

	g := graphFromAdjacency(adj)
	g.RunKosaraju()
	require.True(t, g.HasSCCs())

	sizes := make(map[Index]int)
	for u := 0; u < g.NumberOfVertices(); u++ {
		sizes[g.GetSCCOfAVertex(Index(u))]++
	}
	largest := 0
	for _, size := range sizes {
		largest = max(largest, size)
	}

	// {Jabba, Bib, Boba, Luke}, {Chewbacca, Grakchawwaa}, {R2D2}
	assert.Equal(t, 3, g.NumberOfSCCs())
	assert.Equal(t, 4, largest)
	assert.Equal(t, g.GetSCCOfAVertex(0), g.GetSCCOfAVertex(4))
	assert.True(t, g.Reachable(0, 3))
	assert.False(t, g.Reachable(3, 0))
	assert.False(t, g.Reachable(6, 0))
}

func bfsReachable(adj [][]Index, s, t Index) bool {
	seen := make([]bool, len(adj))
	seen[s] = true
	queue := []Index{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			return true
		}
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

func TestKosarajuMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		n := 1 + rng.Intn(25)
		adj := make([][]Index, n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v && rng.Float64() < 0.08 {
					adj[u] = append(adj[u], Index(v))
				}
			}
		}

		g := graphFromAdjacency(adj)
		g.RunKosaraju()
		for u := Index(0); u < Index(n); u++ {
			for v := Index(0); v < Index(n); v++ {
				want := bfsReachable(adj, u, v)
				require.Equal(t, want, g.Reachable(u, v), "graph %d, %d -> %d", iter, u, v)

				mutual := want && bfsReachable(adj, v, u)
				assert.Equal(t, mutual, g.GetSCCOfAVertex(u) == g.GetSCCOfAVertex(v))
			}
		}
	}
}

func TestKosarajuLongPathDoesNotRecurse(t *testing.T) {
	n := 200000
	vertices := make([]Vertex, n)
	adj := make([][]OutEdge, n)
	for u := 0; u < n; u++ {
		c := geo.NewCoordinate(0, float64(u)*1e-5)
		vertices[u] = NewVertex(c.Lat, c.Lon, int64(u))
		if u+1 < n {
			adj[u] = append(adj[u], NewOutEdge(Index(u+1), 30))
		}
	}
	g := NewGraph(vertices, adj, nil)
	g.RunKosaraju()
	assert.Equal(t, n, g.NumberOfSCCs())
	assert.True(t, g.Reachable(0, Index(n-1)))
	assert.False(t, g.Reachable(Index(n-1), 0))
}

func TestReachableAtSharedCoordinate(t *testing.T) {
	// 0 -> 1 and 2 -> 3, vertices 1 and 3 share a coordinate
	vertices := []Vertex{
		NewVertex(0.01, 0.02, 12),
		NewVertex(0, 0.01, 13),
		NewVertex(0, 0, 10),
		NewVertex(0, 0.01, 11),
	}
	adj := [][]OutEdge{
		{NewOutEdge(1, 35)},
		{},
		{NewOutEdge(3, 35)},
		{},
	}
	g := NewGraph(vertices, adj, nil)
	g.RunKosaraju()

	shared := geo.NewCoordinate(0, 0.01)
	assert.False(t, g.Reachable(2, 1))
	assert.True(t, g.ReachableAt(2, shared))
	assert.True(t, g.ReachableAt(0, shared))
	assert.True(t, g.ReachableAt(2, geo.NewCoordinate(0, 0)))
	assert.False(t, g.ReachableAt(2, geo.NewCoordinate(0.01, 0.02)))
	assert.False(t, g.ReachableAt(1, geo.NewCoordinate(0, 0)))
	assert.False(t, g.ReachableAt(2, geo.NewCoordinate(5, 5)))
}
