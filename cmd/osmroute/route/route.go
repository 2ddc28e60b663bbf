package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/lintang-b-s/osmrouter/cmd/osmroute/cli"
	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/engine/routing"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/spf13/cobra"
)

var (
	out io.Writer = os.Stdout

	ErrNoPath = errors.New("no path found")
)

const (
	FORMAT_TEXT     = "text"
	FORMAT_POLYLINE = "polyline"
	FORMAT_GEOJSON  = "geojson"
)

var (
	from  geo.Coordinate
	to    geo.Coordinate
	model pkg.CostModel
)

func init() {
	cli.RootCmd.AddCommand(routeCmd)

	flags := routeCmd.Flags()
	flags.Var(cli.NewCoordinateValue(&from), "from", "route origin")
	flags.Var(cli.NewCoordinateValue(&to), "to", "route destination")
	flags.VarP(cli.NewCostModelValue(pkg.DISTANCE, &model), "mode", "m", "cost model: distance or time")
	flags.StringP("format", "o", FORMAT_TEXT, "output format: text, polyline or geojson")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")
}

var routeCmd = &cobra.Command{
	Use:   "route <OSM file> --from lat,lon --to lat,lon",
	Short: "Print the shortest path between two points",
	Long:  "Snap both points to their nearest road vertex and print the shortest path between them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		if format != FORMAT_TEXT && format != FORMAT_POLYLINE && format != FORMAT_GEOJSON {
			return fmt.Errorf("unknown format %q", format)
		}

		eng, _, err := cli.LoadEngine(cmd, args[0])
		if err != nil {
			return err
		}

		route, err := runRoute(eng.GetRoutingEngine(), from, to, model)
		if err != nil {
			return err
		}
		return render(route, format)
	},
}

func runRoute(re *routing.RoutingEngine, from, to geo.Coordinate, model pkg.CostModel) (*routing.Route, error) {
	route, found := re.ShortestPath(from, to, model)
	if !found {
		return nil, fmt.Errorf("%w from %v,%v to %v,%v", ErrNoPath, from.Lat, from.Lon, to.Lat, to.Lon)
	}
	return route, nil
}

func render(route *routing.Route, format string) error {
	switch format {
	case FORMAT_POLYLINE:
		fmt.Fprintln(out, geo.PolylineFromCoords(route.Path))
	case FORMAT_GEOJSON:
		fc := geo.RouteFeatureCollection(route.Path, map[string]interface{}{
			"mode":                route.Model.String(),
			"distance_miles":      route.DistanceMiles,
			"travel_time_minutes": route.TravelTimeMinutes,
		})
		b, err := json.Marshal(fc)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	default:
		renderTxt(route)
	}
	return nil
}

func renderTxt(route *routing.Route) {
	fmt.Fprintf(out, "Mode: %s\n", route.Model)
	fmt.Fprintf(out, "Source: %d\n", route.SourceOsmID)
	fmt.Fprintf(out, "Target: %d\n", route.TargetOsmID)
	fmt.Fprintf(out, "Distance: %s mi\n", humanize.CommafWithDigits(route.DistanceMiles, 3))
	fmt.Fprintf(out, "TravelTime: %s min\n", humanize.CommafWithDigits(route.TravelTimeMinutes, 1))
	fmt.Fprintf(out, "Vertices: %s\n", humanize.Comma(int64(len(route.Path))))
	fmt.Fprintf(out, "Settled: %s\n", humanize.Comma(int64(route.SettledNodes)))
	for _, c := range route.Path {
		fmt.Fprintf(out, "%.6f,%.6f\n", c.Lat, c.Lon)
	}
}
