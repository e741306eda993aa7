package restapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/C1200/community-server-railway/internal/clock"
)

func TestCurrentTimeHandler(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	mockClock := clock.NewMockClock(fixedTime)

	api := createTestApiWithClock(t, mockClock)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/current-time")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, fixedTime.UnixMilli(), model.CurrentTime)

	entry := entryFromModel(t, model)
	assert.Equal(t, float64(fixedTime.UnixMilli()), entry["time"])
	assert.Equal(t, fixedTime.Format(time.RFC3339), entry["readableTime"])
}
