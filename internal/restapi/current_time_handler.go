package restapi

import (
	"net/http"

	"github.com/C1200/community-server-railway/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	timeData := models.NewCurrentTimeData(api.Clock.Now())
	response := models.NewEntryResponse(timeData, api.Clock)

	api.sendResponse(w, r, response)
}
