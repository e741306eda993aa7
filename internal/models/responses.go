// Package models defines the JSON payloads served to the map frontend.
package models

import (
	"net/http"
	"time"

	"github.com/C1200/community-server-railway/internal/clock"
)

// ResponseModel is the envelope for every JSON API response.
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
	Data        any    `json:"data,omitempty"`
}

// EntryData wraps a single-entity response body.
type EntryData struct {
	Entry any `json:"entry"`
}

// ListData wraps a list response body.
type ListData struct {
	List any `json:"list"`
}

// ResponseCurrentTime returns the envelope timestamp for the given clock.
func ResponseCurrentTime(c clock.Clock) int64 {
	return c.NowUnixMilli()
}

// NewOKResponse wraps arbitrary data in a 200 envelope.
func NewOKResponse(data any, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(c),
		Text:        "OK",
		Version:     1,
		Data:        data,
	}
}

// NewEntryResponse wraps a single entity in a 200 envelope.
func NewEntryResponse(entry any, c clock.Clock) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry}, c)
}

// NewListResponse wraps a list of entities in a 200 envelope.
func NewListResponse(list any, c clock.Clock) ResponseModel {
	return NewOKResponse(ListData{List: list}, c)
}

// CurrentTimeData is the payload for the current-time endpoint.
type CurrentTimeData struct {
	Time         int64  `json:"time"`
	ReadableTime string `json:"readableTime"`
}

// NewCurrentTimeData builds the current-time payload for the given instant.
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	return CurrentTimeData{
		Time:         t.UnixMilli(),
		ReadableTime: t.Format(time.RFC3339),
	}
}
