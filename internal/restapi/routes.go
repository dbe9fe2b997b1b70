package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/dashboard.json", api.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/api/options.json", api.optionsHandler)
	router.HandlerFunc(http.MethodGet, "/api/chart/:kind", api.chartHandler)
}
