package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/lintang-b-s/osmrouter/pkg/logger"
	"github.com/lintang-b-s/osmrouter/pkg/osmparser"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecords = `{"type":"way","id":1,"nodes":[1,2,3],"tags":{"highway":"residential"}}
{"type":"way","id":2,"nodes":[3,4],"tags":{"highway":"primary","oneway":"yes"}}
{"type":"node","id":1,"lat":-7.7800,"lon":110.3600}
{"type":"node","id":2,"lat":-7.7800,"lon":110.3700}
{"type":"node","id":3,"lat":-7.7900,"lon":110.3700}
{"type":"node","id":4,"lat":-7.8000,"lon":110.3800}
`

func TestNewEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(testRecords), 0644))

	for _, snapper := range []string{SNAPPER_RTREE, SNAPPER_LINEAR} {
		t.Run(snapper, func(t *testing.T) {
			cfg := util.Config{MapFile: path, Snapper: snapper, ConnectivityPrecheck: true}
			eng, err := NewEngine(context.Background(), cfg, osmparser.NewOSMParser(logger.NewNop()), logger.NewNop())
			require.NoError(t, err)

			g := eng.GetGraph()
			assert.Equal(t, 4, g.NumberOfVertices())
			assert.Equal(t, 5, g.NumberOfEdges())
			assert.True(t, g.HasSCCs())
			assert.Equal(t, 2, g.NumberOfSCCs())

			route, found := eng.GetRoutingEngine().ShortestPath(geo.NewCoordinate(-7.7801, 110.3601),
				geo.NewCoordinate(-7.8001, 110.3801), pkg.TIME)
			require.True(t, found)
			assert.Len(t, route.Path, 4)
			assert.Equal(t, int64(1), route.SourceOsmID)
			assert.Equal(t, int64(4), route.TargetOsmID)

			_, found = eng.GetRoutingEngine().ShortestPath(geo.NewCoordinate(-7.8001, 110.3801),
				geo.NewCoordinate(-7.7801, 110.3601), pkg.TIME)
			assert.False(t, found)
		})
	}
}

func TestNewSnapperUnknown(t *testing.T) {
	_, err := NewSnapper(nil, util.Config{Snapper: "kdtree"}, logger.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, util.ErrorCode(err), util.ErrBadParamInput)
}
