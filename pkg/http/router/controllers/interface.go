package controllers

import (
	"context"

	"github.com/lintang-b-s/osmrouter/pkg/engine/routing"
	"github.com/lintang-b-s/osmrouter/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(ctx context.Context, query usecases.RouteQuery) (*routing.Route, error)
	BatchShortestPath(ctx context.Context, queries []usecases.RouteQuery) ([]usecases.BatchResult, error)
	GraphInfo() usecases.GraphInfo
}
