package restapi

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the JSON response from the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Detail   string `json:"detail,omitempty"`
	LastPoll int64  `json:"lastPoll,omitempty"`
}

// healthHandler reports readiness of the resolved network data.
// It returns 503 Service Unavailable until the first network snapshot has
// been resolved, and flags a stale train feed once polling has started.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if api.Application == nil || api.Manager == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "unavailable",
			Detail: "manager not initialized",
		})
		return
	}

	if !api.Manager.IsHealthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "starting",
			Detail: "network snapshot is being loaded",
		})
		return
	}

	lastPoll := api.Manager.LastPoll()

	// A feed that has polled before but fallen more than four intervals
	// behind is degraded, not down: the station graph still serves.
	staleThreshold := 4 * api.RailwayConfig.PollInterval
	if !lastPoll.IsZero() && api.Clock.Now().Sub(lastPoll) > staleThreshold {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status:   "degraded",
			Detail:   "train feed is stale",
			LastPoll: lastPoll.UnixMilli(),
		})
		return
	}

	response := HealthResponse{Status: "ok"}
	if !lastPoll.IsZero() {
		response.LastPoll = lastPoll.UnixMilli()
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
