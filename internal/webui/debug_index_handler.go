package webui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/C1200/community-server-railway/internal/appconf"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		slog.Error("failed to parse debug template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		slog.Error("failed to execute debug template", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	if webUI.Config.Env == appconf.Production {
		http.NotFound(w, r)
		return
	}
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "stations":
		data = webUI.Manager.GetStations()
		title = "Resolved Stations"
	case "routes":
		data = webUI.Manager.Registry().GetAll()
		title = "Route Registry"
	case "trains":
		data = webUI.Manager.GetTrains()
		title = "Latest Train Snapshot"
	case "liveries":
		data = webUI.Manager.LiveryCSS()
		title = "Livery Stylesheet"
	default:
		data = map[string]string{
			"error": "Please use one of the following: stations, routes, trains, liveries.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
