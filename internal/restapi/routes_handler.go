package restapi

import (
	"net/http"

	"github.com/C1200/community-server-railway/internal/models"
)

func (api *RestAPI) routesHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	routes := api.Manager.Registry().GetAll()
	response := models.NewListResponse(models.NewRouteList(routes), api.Clock)
	api.sendResponse(w, r, response)
}

// routeHandler looks up a route by its two-part id, "{operator}/{route}".
func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	operator := r.PathValue("operator")
	routeSlug := r.PathValue("route")
	if operator == "" || routeSlug == "" {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {"must be of the form operator/route"},
		})
		return
	}

	route, ok := api.Manager.Registry().GetByID(operator + "/" + routeSlug)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(models.NewRoute(route), api.Clock)
	api.sendResponse(w, r, response)
}

func (api *RestAPI) routesForStationHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	station, ok := api.Manager.GetStationByID(r.PathValue("id"))
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	routes := api.Manager.Registry().GetByStation(station)
	response := models.NewListResponse(models.NewRouteList(routes), api.Clock)
	api.sendResponse(w, r, response)
}

func (api *RestAPI) routesForOperatorHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	routes := api.Manager.Registry().GetByOperator(r.PathValue("operator"))
	response := models.NewListResponse(models.NewRouteList(routes), api.Clock)
	api.sendResponse(w, r, response)
}
