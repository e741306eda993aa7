package app

import (
	"log/slog"

	"github.com/C1200/community-server-railway/internal/appconf"
	"github.com/C1200/community-server-railway/internal/clock"
	"github.com/C1200/community-server-railway/internal/metrics"
	"github.com/C1200/community-server-railway/internal/railway"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything downstream of main reaches its
// collaborators through this struct rather than package-level state.
type Application struct {
	Config        appconf.Config
	RailwayConfig railway.Config
	Logger        *slog.Logger
	Manager       *railway.Manager
	Clock         clock.Clock
	Metrics       *metrics.Metrics
}
