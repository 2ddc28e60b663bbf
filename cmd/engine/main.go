package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/osmrouter/pkg/engine"
	"github.com/lintang-b-s/osmrouter/pkg/http"
	"github.com/lintang-b-s/osmrouter/pkg/http/usecases"
	"github.com/lintang-b-s/osmrouter/pkg/logger"
	"github.com/lintang-b-s/osmrouter/pkg/osmparser"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile    = flag.String("f", "", "openstreetmap file (.osm.pbf, .osm, .osm.bz2, .jsonl), overrides MAP_FILE")
	configDir  = flag.String("config", "", "extra directory to look for config.yaml")
	snapper    = flag.String("snapper", "", "nearest vertex index: rtree or linear, overrides SNAPPER")
	useLimiter = flag.Bool("rate_limit", false, "enable the global rate limiter, overrides USE_RATE_LIMIT")
)

func main() {
	flag.Parse()

	var dirs []string
	if *configDir != "" {
		dirs = append(dirs, *configDir)
	}
	if err := util.ReadConfig(dirs...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *mapFile != "" {
		viper.Set("MAP_FILE", *mapFile)
	}
	if *snapper != "" {
		viper.Set("SNAPPER", *snapper)
	}
	if *useLimiter {
		viper.Set("USE_RATE_LIMIT", true)
	}
	cfg := util.LoadConfig()

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // ignore

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	defer cleanup()

	parser := osmparser.NewOSMParser(logger)
	routingEngine, err := engine.NewEngine(ctx, cfg, parser, logger)
	if err != nil {
		logger.Fatal("failed to build road graph", zap.Error(err))
	}
	stats := parser.GetStats()
	logger.Info("road graph ready",
		zap.Int("accepted_ways", stats.AcceptedWays),
		zap.Int("ignored_ways", stats.IgnoredWays),
		zap.Int("vertices", routingEngine.GetGraph().NumberOfVertices()),
		zap.Int("edges", routingEngine.GetGraph().NumberOfEdges()))

	var connectivity usecases.ConnectivityIndex
	if cfg.ConnectivityPrecheck {
		connectivity = routingEngine.GetGraph()
	}
	routingService := usecases.NewRoutingService(logger, routingEngine.GetRoutingEngine(), connectivity,
		routingEngine.GetGraph(), cfg.BatchWorkers, cfg.BatchMaxQueries)

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, cfg.UseRateLimit, cfg.ApiTimeout, routingService); err != nil {
		logger.Fatal("failed to start api", zap.Error(err))
	}

	go func() {
		if err := api.Wait(); err != nil {
			logger.Error("api stopped", zap.Error(err))
			cleanup()
		}
	}()

	reason := "api stopped"
	if sig := http.GracefulShutdown(ctx); sig != nil {
		reason = sig.String()
	}
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("api shutdown", zap.Error(err))
	}

	logger.Info("osmrouter server stopped", zap.String("reason", reason))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
