package restapi

import (
	"net/http"
	"strconv"

	"github.com/C1200/community-server-railway/internal/models"
)

const defaultSearchRadius = 500.0

func (api *RestAPI) stationsForLocationHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	fieldErrors := make(map[string][]string)

	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		fieldErrors["x"] = []string{"must be a valid number"}
	}

	z, err := strconv.ParseFloat(r.URL.Query().Get("z"), 64)
	if err != nil {
		fieldErrors["z"] = []string{"must be a valid number"}
	}

	radius := defaultSearchRadius
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 {
			fieldErrors["radius"] = []string{"must be a non-negative number"}
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stations := api.Manager.GetStationsForLocation(x, z, radius)
	response := models.NewListResponse(models.NewStationList(stations), api.Clock)
	api.sendResponse(w, r, response)
}
