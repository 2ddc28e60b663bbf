package controllers

import (
	"github.com/lintang-b-s/osmrouter/pkg/engine/routing"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	"github.com/lintang-b-s/osmrouter/pkg/http/usecases"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"github.com/paulmach/orb/geojson"
)

const (
	FORMAT_POLYLINE = "polyline"
	FORMAT_GEOJSON  = "geojson"
)

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
	Mode           string  `json:"mode"`
	Format         string  `json:"format" validate:"omitempty,oneof=polyline geojson"`
}

type batchShortestPathRequest struct {
	Queries []shortestPathRequest `json:"queries" validate:"required,min=1,dive"`
}

type shortestPathResponse struct {
	Mode              string                     `json:"mode"`
	Cost              float64                    `json:"cost"`
	DistanceMiles     float64                    `json:"distance_miles"`
	TravelTimeMinutes float64                    `json:"travel_time_minutes"`
	SettledNodes      int                        `json:"settled_nodes"`
	SourceOsmID       int64                      `json:"source_osm_id"`
	TargetOsmID       int64                      `json:"target_osm_id"`
	Path              string                     `json:"path,omitempty"`
	Geometry          *geojson.FeatureCollection `json:"geometry,omitempty"`
}

func NewShortestPathResponse(route *routing.Route, format string) shortestPathResponse {
	resp := shortestPathResponse{
		Mode:              route.Model.String(),
		Cost:              route.Cost,
		DistanceMiles:     util.RoundFloat(route.DistanceMiles, 6),
		TravelTimeMinutes: util.RoundFloat(route.TravelTimeMinutes, 6),
		SettledNodes:      route.SettledNodes,
		SourceOsmID:       route.SourceOsmID,
		TargetOsmID:       route.TargetOsmID,
	}
	if format == FORMAT_GEOJSON {
		resp.Geometry = geo.RouteFeatureCollection(route.Path, map[string]interface{}{
			"mode":                route.Model.String(),
			"distance_miles":      resp.DistanceMiles,
			"travel_time_minutes": resp.TravelTimeMinutes,
		})
	} else {
		resp.Path = geo.PolylineFromCoords(route.Path)
	}
	return resp
}

type batchItemResponse struct {
	Route *shortestPathResponse `json:"route,omitempty"`
	Error *errorBody            `json:"error,omitempty"`
}

func NewBatchResponse(results []usecases.BatchResult, formats []string) []batchItemResponse {
	resp := make([]batchItemResponse, len(results))
	for i, res := range results {
		if res.Err != nil {
			resp[i].Error = &errorBody{Code: errorCodeName(res.Err), Message: res.Err.Error()}
			continue
		}
		route := NewShortestPathResponse(res.Route, formats[i])
		resp[i].Route = &route
	}
	return resp
}

type graphInfoResponse struct {
	Vertices    int         `json:"vertices"`
	Edges       int         `json:"edges"`
	SCCs        int         `json:"strongly_connected_components"`
	BoundingBox *[4]float64 `json:"bbox,omitempty"` // min lon, min lat, max lon, max lat
}

func NewGraphInfoResponse(info usecases.GraphInfo) graphInfoResponse {
	resp := graphInfoResponse{
		Vertices: info.Vertices,
		Edges:    info.Edges,
		SCCs:     info.SCCs,
	}
	if bb := info.BoundingBox; bb != nil {
		resp.BoundingBox = &[4]float64{bb.GetMinLon(), bb.GetMinLat(), bb.GetMaxLon(), bb.GetMaxLat()}
	}
	return resp
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}
