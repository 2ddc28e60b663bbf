package info

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/osmrouter/cmd/osmroute/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecords = `{"type":"way","id":1,"nodes":[1,2,3],"tags":{"highway":"residential"}}
{"type":"way","id":2,"nodes":[3,4],"tags":{"highway":"primary","oneway":"yes"}}
{"type":"way","id":3,"nodes":[4,5],"tags":{"highway":"footway"}}
{"type":"node","id":1,"lat":-7.7800,"lon":110.3600}
{"type":"node","id":2,"lat":-7.7800,"lon":110.3700}
{"type":"node","id":3,"lat":-7.7900,"lon":110.3700}
{"type":"node","id":4,"lat":-7.8000,"lon":110.3800}
{"type":"node","id":5,"lat":-7.8100,"lon":110.3900}
`

func TestInfoCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(testRecords), 0644))

	buf := new(bytes.Buffer)
	prev := out
	out = buf
	t.Cleanup(func() { out = prev })

	cli.RootCmd.SetArgs([]string{"info", path, "--progress=false", "--snapper", "linear"})
	require.NoError(t, cli.RootCmd.Execute())
	assert.Equal(t, "Vertices: 4\n"+
		"Edges: 5\n"+
		"StronglyConnectedComponents: 2\n"+
		"AcceptedWays: 2\n"+
		"IgnoredWays: 1\n"+
		"ScannedNodes: 5\n"+
		"BoundingBox: 110.360000,-7.800000,110.380000,-7.780000\n", buf.String())

	buf.Reset()
	cli.RootCmd.SetArgs([]string{"info", path, "--progress=false", "--json"})
	require.NoError(t, cli.RootCmd.Execute())

	var got graphInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 4, got.Vertices)
	assert.Equal(t, 5, got.Edges)
	assert.Equal(t, 2, got.SCCs)
	require.NotNil(t, got.BoundingBox)
	assert.InDelta(t, -7.8, got.BoundingBox[1], 1e-9)
}
