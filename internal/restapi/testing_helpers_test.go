// testing_helpers_test.go wires a full API instance against a canned
// Track Map feed for handler integration tests.
package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/C1200/community-server-railway/internal/app"
	"github.com/C1200/community-server-railway/internal/appconf"
	"github.com/C1200/community-server-railway/internal/clock"
	"github.com/C1200/community-server-railway/internal/metrics"
	"github.com/C1200/community-server-railway/internal/models"
	"github.com/C1200/community-server-railway/internal/railway"
)

const testNetworkFixture = `{
	"stations": [
		{"name": "Central North", "dimension": "minecraft:overworld", "location": {"x": 100, "y": 64, "z": -40}},
		{"name": "Central South", "dimension": "minecraft:overworld", "location": {"x": 200, "y": 64, "z": -80}},
		{"name": "Harbor", "dimension": "minecraft:overworld", "location": {"x": 500, "y": 64, "z": 300}}
	]
}`

const testTrainsFixture = `{
	"trains": [
		{
			"id": "train-a1b2c3",
			"name": "Express 1",
			"owner": null,
			"cars": [
				{
					"id": 0,
					"leading": {"dimension": "minecraft:overworld", "location": {"x": 10, "y": 64, "z": 20}},
					"trailing": {"dimension": "minecraft:overworld", "location": {"x": 10, "y": 64, "z": 10}}
				}
			],
			"backwards": false,
			"stopped": false
		}
	]
}`

func newTestFeedServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/network":
			_, _ = w.Write([]byte(testNetworkFixture))
		case "/api/trains":
			_, _ = w.Write([]byte(testTrainsFixture))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func testRailwayConfig(url string) railway.Config {
	return railway.Config{
		TrackmapURL: url,
		Groups: []railway.StationGroupConfig{
			{Name: "Central", Includes: []string{"Central North", "Central South"}},
		},
		Routes: []railway.RouteConfig{
			{
				Name:     "Coast Line",
				Operator: "Community Rail",
				Short:    "C1",
				Color:    "#ff0000",
				Stations: []string{"Central", "Harbor"},
				Trains:   []string{"train-a1b2c3"},
			},
		},
		Liveries: []railway.LiveryEntry{
			{Key: 1, Livery: &railway.LiveryStyle{Color: "#8b0000", Text: "#ffffff", Stroke: "#000000"}, Trains: []string{"train-a1b2c3"}},
		},
		// Background loops stay quiet; polls are driven explicitly.
		PollInterval:           time.Hour,
		StationRefreshInterval: time.Hour,
	}
}

func createTestApiWithClock(t *testing.T, clk clock.Clock) *RestAPI {
	t.Helper()

	feed := newTestFeedServer(t)
	railwayConfig := testRailwayConfig(feed.URL)

	m := metrics.New()
	manager, err := railway.InitManager(railwayConfig, clk, m)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	require.NoError(t, manager.PollTrains(context.Background()))

	application := &app.Application{
		Config:        appconf.Config{Env: appconf.Test},
		RailwayConfig: railwayConfig,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Manager:       manager,
		Clock:         clk,
		Metrics:       m,
	}

	return NewRestAPI(application)
}

func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	return createTestApiWithClock(t, clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, path string) (*http.Response, models.ResponseModel) {
	t.Helper()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var model models.ResponseModel
	if resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
	}

	return resp, model
}

func serveAndRetrieveEndpoint(t *testing.T, path string) (*RestAPI, *http.Response, models.ResponseModel) {
	t.Helper()

	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, path)
	return api, resp, model
}

func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "could not cast data to expected type")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "could not find entry in response data")
	return entry
}

func listFromModel(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "could not cast data to expected type")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "could not find list in response data")
	return list
}
