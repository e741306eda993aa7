package restapi

import (
	"net/http"

	"github.com/C1200/community-server-railway/internal/models"
)

func (api *RestAPI) trainsHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Manager.IsHealthy() {
		http.Error(w, "Service Unavailable: network data not loaded", http.StatusServiceUnavailable)
		return
	}

	trains := api.Manager.GetTrains()
	response := models.NewListResponse(models.NewTrainList(trains), api.Clock)
	api.sendResponse(w, r, response)
}

// trainHandler looks up a single train by id. Short ids from the in-game
// UI resolve via unambiguous prefix match against the resolver cache.
func (api *RestAPI) trainHandler(w http.ResponseWriter, r *http.Request) {
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

	train, ok := api.Manager.GetTrainByIDPrefix(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(models.NewTrain(train), api.Clock)
	api.sendResponse(w, r, response)
}
