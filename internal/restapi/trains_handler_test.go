package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainsHandlerReturnsLatestSnapshot(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trains")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	require.Len(t, list, 1)

	train, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "train-a1b2c3", train["id"])
	assert.Equal(t, "Express 1", train["name"])
	assert.Equal(t, 1.0, train["carriages"])
	assert.Equal(t, 1.0, train["livery"])

	location, ok := train["location"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, 20.0, location[0])
	assert.Equal(t, 10.0, location[1])
	assert.Equal(t, 180.0, train["angle"])

	route, ok := train["route"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "community-rail/coast-line", route["id"])
}

func TestTrainHandlerByFullID(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trains/train-a1b2c3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "train-a1b2c3", entry["id"])
}

func TestTrainHandlerByPrefix(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trains/train-a1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "train-a1b2c3", entry["id"])
}

func TestTrainHandlerUnknownPrefix(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trains/zzz")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
}
