package restapi

import (
	"net/http"

	"github.com/C1200/community-server-railway/internal/models"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	stations := api.Manager.GetStations()
	response := models.NewListResponse(models.NewStationList(stations), api.Clock)
	api.sendResponse(w, r, response)
}

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {"must not be empty"},
		})
		return
	}

	station, ok := api.Manager.GetStationByID(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(models.NewStation(station), api.Clock)
	api.sendResponse(w, r, response)
}
