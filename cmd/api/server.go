package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"

	"github.com/C1200/community-server-railway/internal/app"
	"github.com/C1200/community-server-railway/internal/appconf"
	"github.com/C1200/community-server-railway/internal/clock"
	"github.com/C1200/community-server-railway/internal/metrics"
	"github.com/C1200/community-server-railway/internal/railway"
	"github.com/C1200/community-server-railway/internal/restapi"
	"github.com/C1200/community-server-railway/internal/webui"
)

// buildApplication wires the manager and its collaborators. It blocks until
// the initial network snapshot has been resolved.
func buildApplication(cfg appconf.Config, railwayConfig railway.Config, logger *slog.Logger) (*app.Application, error) {
	m := metrics.New()

	manager, err := railway.InitManager(railwayConfig, clock.RealClock{}, m)
	if err != nil {
		return nil, err
	}

	return &app.Application{
		Config:        cfg,
		RailwayConfig: railwayConfig,
		Logger:        logger,
		Manager:       manager,
		Clock:         clock.RealClock{},
		Metrics:       m,
	}, nil
}

// newServerHandler assembles the full middleware chain and route set.
// The returned stop function releases middleware background resources.
func newServerHandler(application *app.Application) (http.Handler, func()) {
	mux := http.NewServeMux()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(mux)

	ui := webui.NewWebUI(application)
	ui.SetRoutes(mux)

	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	})

	rateLimiter := restapi.NewRateLimitMiddleware(application.Config.RateLimit, application.Clock)

	var handler http.Handler = mux
	handler = gzhttp.GzipHandler(handler)
	handler = corsMiddleware(handler)
	handler = rateLimiter.Handler()(handler)
	handler = restapi.MetricsHandler(application.Metrics)(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
	handler = restapi.RequestIDMiddleware(handler)

	return handler, rateLimiter.Stop
}

func createServer(cfg appconf.Config, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
