package info

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/lintang-b-s/osmrouter/cmd/osmroute/cli"
	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/osmparser"
	"github.com/spf13/cobra"
)

var out io.Writer = os.Stdout

type graphInfo struct {
	Vertices     int         `json:"vertices"`
	Edges        int         `json:"edges"`
	SCCs         int         `json:"strongly_connected_components"`
	AcceptedWays int         `json:"accepted_ways"`
	IgnoredWays  int         `json:"ignored_ways"`
	ScannedNodes int         `json:"scanned_nodes"`
	BoundingBox  *[4]float64 `json:"bbox,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
}

var infoCmd = &cobra.Command{
	Use:   "info <OSM file>",
	Short: "Print statistics of the road graph built from an OSM file",
	Long:  "Print statistics of the road graph built from an OSM file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, stats, err := cli.LoadEngine(cmd, args[0])
		if err != nil {
			return err
		}

		info := runInfo(eng.GetGraph(), stats)

		jsonfmt, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		if jsonfmt {
			return renderJSON(info)
		}
		renderTxt(info)
		return nil
	},
}

func runInfo(g *datastructure.Graph, stats osmparser.BuildStats) graphInfo {
	info := graphInfo{
		Vertices:     g.NumberOfVertices(),
		Edges:        g.NumberOfEdges(),
		SCCs:         -1,
		AcceptedWays: stats.AcceptedWays,
		IgnoredWays:  stats.IgnoredWays,
		ScannedNodes: stats.ScannedNodes,
	}
	if g.HasSCCs() {
		info.SCCs = g.NumberOfSCCs()
	}
	if bb := g.GetBoundingBox(); bb != nil {
		info.BoundingBox = &[4]float64{bb.GetMinLon(), bb.GetMinLat(), bb.GetMaxLon(), bb.GetMaxLat()}
	}
	return info
}

func renderJSON(info graphInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(b))
	return nil
}

func renderTxt(info graphInfo) {
	fmt.Fprintf(out, "Vertices: %s\n", humanize.Comma(int64(info.Vertices)))
	fmt.Fprintf(out, "Edges: %s\n", humanize.Comma(int64(info.Edges)))
	if info.SCCs >= 0 {
		fmt.Fprintf(out, "StronglyConnectedComponents: %s\n", humanize.Comma(int64(info.SCCs)))
	}
	fmt.Fprintf(out, "AcceptedWays: %s\n", humanize.Comma(int64(info.AcceptedWays)))
	fmt.Fprintf(out, "IgnoredWays: %s\n", humanize.Comma(int64(info.IgnoredWays)))
	fmt.Fprintf(out, "ScannedNodes: %s\n", humanize.Comma(int64(info.ScannedNodes)))
	if bb := info.BoundingBox; bb != nil {
		fmt.Fprintf(out, "BoundingBox: %.6f,%.6f,%.6f,%.6f\n", bb[0], bb[1], bb[2], bb[3])
	}
}
