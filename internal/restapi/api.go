// Package restapi exposes the resolved railway network as a JSON API for
// the map frontend, plus the livery stylesheet, health, and metrics
// endpoints.
package restapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/C1200/community-server-railway/internal/app"
)

// RestAPI holds the handlers for the JSON API surface.
type RestAPI struct {
	*app.Application
}

func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{Application: application}
}

// SetRoutes registers all API routes on the given mux. Static network data
// is cacheable for a minute; the real-time train feed and operational
// endpoints are never cached.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	staticTTL := 60

	mux.Handle("GET /api/stations", CacheControlMiddleware(staticTTL, http.HandlerFunc(api.stationsHandler)))
	mux.Handle("GET /api/stations/{id}", CacheControlMiddleware(staticTTL, http.HandlerFunc(api.stationHandler)))
	mux.Handle("GET /api/stations-for-location", CacheControlMiddleware(0, http.HandlerFunc(api.stationsForLocationHandler)))

	mux.Handle("GET /api/routes", CacheControlMiddleware(staticTTL, http.HandlerFunc(api.routesHandler)))
	mux.Handle("GET /api/routes/{operator}/{route}", CacheControlMiddleware(staticTTL, http.HandlerFunc(api.routeHandler)))
	mux.Handle("GET /api/routes-for-station/{id}", CacheControlMiddleware(staticTTL, http.HandlerFunc(api.routesForStationHandler)))
	mux.Handle("GET /api/routes-for-operator/{operator}", CacheControlMiddleware(staticTTL, http.HandlerFunc(api.routesForOperatorHandler)))

	mux.Handle("GET /api/trains", CacheControlMiddleware(0, http.HandlerFunc(api.trainsHandler)))
	mux.Handle("GET /api/trains/{id}", CacheControlMiddleware(0, http.HandlerFunc(api.trainHandler)))

	mux.Handle("GET /livery.css", CacheControlMiddleware(staticTTL, http.HandlerFunc(api.liveryCSSHandler)))

	mux.HandleFunc("GET /api/current-time", api.currentTimeHandler)
	mux.HandleFunc("GET /health", api.healthHandler)

	if api.Metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(api.Metrics.Registry, promhttp.HandlerOpts{}))
	}
}
