// Package webui serves the static map frontend and a developer-only
// debug view of the resolved network data.
package webui

import (
	"net/http"

	"github.com/C1200/community-server-railway/internal/app"
)

// WebUI holds the handlers for everything that isn't the JSON API.
type WebUI struct {
	*app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

// SetRoutes registers the web routes on the given mux.
func (webUI *WebUI) SetRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", webUI.staticHandler)
	mux.HandleFunc("GET /debug", webUI.debugIndexHandler)
}
