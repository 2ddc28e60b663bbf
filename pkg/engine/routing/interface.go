package routing

import (
	"github.com/lintang-b-s/osmrouter/pkg"
	da "github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

// Snapper maps an arbitrary coordinate to the nearest graph vertex.
type Snapper interface {
	Nearest(q geo.Coordinate) (da.Index, bool)
}

type Router interface {
	ShortestPath(src, dst geo.Coordinate, model pkg.CostModel) (*Route, bool)
}
