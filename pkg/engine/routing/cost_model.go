package routing

import (
	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
)

// edgeCost. distance model: great-circle miles. time model: hours at the edge's speed limit.
func edgeCost(model pkg.CostModel, distanceMiles, speedMph float64) float64 {
	if model == pkg.TIME {
		return distanceMiles / speedMph
	}
	return distanceMiles
}

// heuristic. straight-line distance to the target never overestimates the remaining road distance.
// the time model searches without a heuristic.
func heuristic(model pkg.CostModel, v, target geo.Coordinate) float64 {
	if model == pkg.TIME {
		return 0
	}
	return geo.GreatCircleDistance(v, target)
}
