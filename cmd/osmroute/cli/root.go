package cli

import (
	"context"
	"os"

	"github.com/lintang-b-s/osmrouter/pkg/engine"
	"github.com/lintang-b-s/osmrouter/pkg/logger"
	"github.com/lintang-b-s/osmrouter/pkg/osmparser"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var RootCmd = &cobra.Command{
	Use:           "osmroute",
	Short:         "Build a road graph from an OSM file and query it",
	Long:          "osmroute builds a directed road graph from an OpenStreetMap extract and answers shortest path queries over it",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("config", "", "extra directory to look for config.yaml")
	flags.String("snapper", "", "nearest vertex index: rtree or linear")
	flags.BoolP("progress", "p", true, "show a progress bar while reading the map")
	flags.BoolP("verbose", "v", false, "log to stderr")
}

// LoadEngine reads the config, parses mapFile and prepares the routing engine.
func LoadEngine(cmd *cobra.Command, mapFile string) (*engine.Engine, osmparser.BuildStats, error) {
	flags := cmd.Flags()

	var dirs []string
	if dir, _ := flags.GetString("config"); dir != "" {
		dirs = append(dirs, dir)
	}
	if err := util.ReadConfig(dirs...); err != nil {
		return nil, osmparser.BuildStats{}, err
	}
	viper.Set("MAP_FILE", mapFile)
	if snapper, _ := flags.GetString("snapper"); snapper != "" {
		viper.Set("SNAPPER", snapper)
	}
	cfg := util.LoadConfig()

	log := logger.NewNop()
	if verbose, _ := flags.GetBool("verbose"); verbose {
		l, err := logger.New()
		if err != nil {
			return nil, osmparser.BuildStats{}, err
		}
		log = l
	}

	parser := osmparser.NewOSMParser(log)
	if progress, _ := flags.GetBool("progress"); progress {
		bars := NewProgressBars(os.Stderr)
		parser.SetProgressReader(bars.Reader)
		defer bars.Finish()
	}

	eng, err := engine.NewEngine(context.Background(), cfg, parser, log)
	if err != nil {
		log.Error("failed to build road graph", zap.Error(err))
		return nil, parser.GetStats(), err
	}
	return eng, parser.GetStats(), nil
}
