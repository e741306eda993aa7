package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationsHandlerReturnsResolvedStations(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/stations")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 1, model.Version)

	list := listFromModel(t, model)
	require.Len(t, list, 2)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "central", first["id"])
	assert.Equal(t, "Central", first["name"])

	// Grouped station location is the centroid of its members, in
	// map order [z, x].
	location, ok := first["location"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, -60.0, location[0])
	assert.Equal(t, 150.0, location[1])
}

func TestStationHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/stations/harbor")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "harbor", entry["id"])
	assert.Equal(t, "Harbor", entry["name"])
}

func TestStationHandlerNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/stations/no-such-station")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
}

func TestStationsForLocationHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/stations-for-location?x=150&z=-60&radius=10")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	require.Len(t, list, 1)
	station, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "central", station["id"])
}

func TestStationsForLocationHandlerEmptyResult(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/stations-for-location?x=99999&z=99999&radius=5")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listFromModel(t, model))
}

func TestStationsForLocationHandlerValidation(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/stations-for-location?x=abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, http.StatusBadRequest, model.Code)
	assert.Equal(t, "validation error", model.Text)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	fieldErrors, ok := data["fieldErrors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "x")
	assert.Contains(t, fieldErrors, "z")
}
