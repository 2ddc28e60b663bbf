package controllers

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/osmrouter/pkg"
	"github.com/lintang-b-s/osmrouter/pkg/geo"
	helper "github.com/lintang-b-s/osmrouter/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/osmrouter/pkg/http/usecases"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &routingAPI{
		routingService: routingService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.POST("/computeRoutes/batch", api.batchShortestPath)
	group.GET("/graph", api.graphInfo)
}

func (api *routingAPI) validateRequest(req any) error {
	if err := api.validate.Struct(req); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}

func (req shortestPathRequest) toQuery() (usecases.RouteQuery, error) {
	model, ok := pkg.ParseCostModel(req.Mode)
	if !ok {
		return usecases.RouteQuery{}, fmt.Errorf("unknown mode %q, want distance or time", req.Mode)
	}
	return usecases.NewRouteQuery(geo.NewCoordinate(req.OriginLat, req.OriginLon),
		geo.NewCoordinate(req.DestinationLat, req.DestinationLon), model), nil
}

// parseCoordinateParams reads the four required coordinate query params into req.
func parseCoordinateParams(query url.Values, req *shortestPathRequest) error {
	params := []struct {
		name string
		dst  *float64
	}{
		{"origin_lat", &req.OriginLat},
		{"origin_lon", &req.OriginLon},
		{"destination_lat", &req.DestinationLat},
		{"destination_lon", &req.DestinationLon},
	}
	for _, p := range params {
		v, err := strconv.ParseFloat(query.Get(p.name), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is required and must be a valid float", p.name)
		}
		*p.dst = v
	}
	return nil
}

func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request shortestPathRequest

	query := r.URL.Query()
	if err := parseCoordinateParams(query, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	request.Mode = query.Get("mode")
	request.Format = query.Get("format")

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	routeQuery, err := request.toQuery()
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ShortestPath(r.Context(), routeQuery)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route, request.Format)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) batchShortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchShortestPathRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	queries := make([]usecases.RouteQuery, len(request.Queries))
	formats := make([]string, len(request.Queries))
	for i, q := range request.Queries {
		rq, err := q.toQuery()
		if err != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("queries[%d]: %w", i, err))
			return
		}
		queries[i] = rq
		formats[i] = q.Format
	}

	results, err := api.routingService.BatchShortestPath(r.Context(), queries)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBatchResponse(results, formats)},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) graphInfo(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewGraphInfoResponse(api.routingService.GraphInfo())},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
