package models

import (
	"time"

	"margdarshak.in/internal/clock"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// NewResponse creates a standard response using the provided clock.
func NewResponse(code int, data interface{}, text string, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(c),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

// NewOKResponse is a helper function that returns a successful response.
func NewOKResponse(data interface{}, c clock.Clock) ResponseModel {
	return NewResponse(200, data, "OK", c)
}

// NewEntryResponse wraps a single entry in the standard data envelope.
func NewEntryResponse(entry interface{}, c clock.Clock) ResponseModel {
	data := map[string]interface{}{
		"entry": entry,
	}
	return NewOKResponse(data, c)
}

// NewListResponse wraps a list in the standard data envelope.
func NewListResponse(list interface{}, c clock.Clock) ResponseModel {
	data := map[string]interface{}{
		"limitExceeded": false,
		"list":          list,
	}
	return NewOKResponse(data, c)
}

// ResponseCurrentTime returns the current time from the provided clock as
// Unix milliseconds.
func ResponseCurrentTime(c clock.Clock) int64 {
	return c.NowUnixMilli()
}

// CurrentTimeData is the payload of the current-time endpoint.
type CurrentTimeData struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// NewCurrentTimeData creates the current-time payload from a time value.
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	return CurrentTimeData{
		ReadableTime: t.Format(time.RFC3339),
		Time:         t.UnixMilli(),
	}
}
