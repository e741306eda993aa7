package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/C1200/community-server-railway/internal/logging"
	"github.com/C1200/community-server-railway/internal/models"
)

// serverErrorResponse logs the error and sends a plain 500. It deliberately
// avoids the JSON envelope since encoding the envelope may be what failed.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	logging.LogError(logger, "internal server error", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// validationErrorResponse sends a 400 with per-field error messages.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)

	response := models.ResponseModel{
		Code:        http.StatusBadRequest,
		CurrentTime: models.ResponseCurrentTime(api.Clock),
		Text:        "validation error",
		Version:     1,
		Data:        map[string]any{"fieldErrors": fieldErrors},
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}
