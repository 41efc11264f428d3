package restapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margdarshak.in/internal/app"
	"margdarshak.in/internal/appconf"
	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/metrics"
	"margdarshak.in/internal/models"
	"margdarshak.in/internal/transit"
	"margdarshak.in/internal/tripstore"
)

func newTestAPI(t *testing.T) *RestAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mock := clock.NewMockClock(time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC))

	store, err := tripstore.Open(":memory:", mock)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"test"},
			RateLimit: 100,
		},
		Logger:    logger,
		Clock:     mock,
		Metrics:   metrics.NewWithLogger(logger),
		Engine:    transit.NewEngine(mock, logger, nil),
		TripStore: store,
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

func serveRequest(t *testing.T, api *RestAPI, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	api.SetupAPIRoutes().ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.ResponseModel {
	t.Helper()
	var envelope models.ResponseModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func entryOf(t *testing.T, envelope models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "entry is not an object")
	return entry
}

func listOf(t *testing.T, envelope models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "list is not an array")
	return list
}

func TestInvalidAPIKey(t *testing.T) {
	api := newTestAPI(t)

	for _, target := range []string{
		"/api/v1/current-time.json",
		"/api/v1/current-time.json?key=wrong",
	} {
		rec := serveRequest(t, api, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)

		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, http.StatusUnauthorized, envelope.Code)
		assert.Equal(t, "permission denied", envelope.Text)
		assert.Equal(t, 1, envelope.Version)
	}
}

func TestCurrentTimeHandler(t *testing.T) {
	api := newTestAPI(t)

	rec := serveRequest(t, api, http.MethodGet, "/api/v1/current-time.json?key=test", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, 200, envelope.Code)
	assert.Equal(t, "OK", envelope.Text)
	assert.Equal(t, 2, envelope.Version)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2025-06-14T14:00:00Z", data["readableTime"])
}

func TestHealthHandlerSkipsAuth(t *testing.T) {
	api := newTestAPI(t)

	rec := serveRequest(t, api, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	rec := serveRequest(t, api, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "margdarshak")
}

func TestCompareRoutesHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("valid trip", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodGet,
			"/api/v1/compare-routes.json?key=test&fromLat=18.9352&fromLng=72.8264&toLat=19.1197&toLng=72.8464", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		entry := entryOf(t, decodeEnvelope(t, rec))
		offers, ok := entry["modes"].([]interface{})
		require.True(t, ok)
		require.NotEmpty(t, offers)

		best := 0
		for _, raw := range offers {
			offer, ok := raw.(map[string]interface{})
			require.True(t, ok)
			if offer["isBest"] == true {
				best++
			}
		}
		assert.Equal(t, 1, best, "exactly one offer must be marked best")
	})

	t.Run("missing parameters", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodGet,
			"/api/v1/compare-routes.json?key=test&fromLat=18.9352", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.Contains(t, envelope.Text, "fromLng")
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodGet,
			"/api/v1/compare-routes.json?key=test&fromLat=95&fromLng=72.8&toLat=19.1&toLng=72.8", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExplainRouteHandler(t *testing.T) {
	api := newTestAPI(t)

	rec := serveRequest(t, api, http.MethodGet,
		"/api/v1/explain-route.json?key=test&fromLat=18.9352&fromLng=72.8264&toLat=19.1197&toLng=72.8464", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	entry := entryOf(t, decodeEnvelope(t, rec))
	require.Contains(t, entry, "best")
	explanation, ok := entry["explanation"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, explanation["summary"])
}

func TestStopsForLocationHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("near Colaba", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodGet,
			"/api/v1/stops-for-location.json?key=test&lat=18.9067&lng=72.8147", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))

		list := listOf(t, decodeEnvelope(t, rec))
		require.NotEmpty(t, list)
		first, ok := list[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Colaba Bus Station", first["name"])
	})

	t.Run("no stops in range", func(t *testing.T) {
		// central Delhi, outside the indexed city
		rec := serveRequest(t, api, http.MethodGet,
			"/api/v1/stops-for-location.json?key=test&lat=28.6139&lng=77.2090", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, listOf(t, decodeEnvelope(t, rec)))
	})

	t.Run("missing lat", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodGet,
			"/api/v1/stops-for-location.json?key=test&lng=72.8147", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad radius falls back to default", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodGet,
			"/api/v1/stops-for-location.json?key=test&lat=18.9067&lng=72.8147&radiusKm=99", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, listOf(t, decodeEnvelope(t, rec)))
	})
}

func TestSafetyForRouteHandler(t *testing.T) {
	api := newTestAPI(t)

	rec := serveRequest(t, api, http.MethodGet,
		"/api/v1/safety-for-route.json?key=test&fromLat=19.0640&fromLng=72.8660&toLat=19.0640&toLng=72.8660", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	entry := entryOf(t, decodeEnvelope(t, rec))
	score, ok := entry["safetyScore"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 9, score, 0.01)
	assert.NotEmpty(t, entry["reasoning"])
}

func TestTripLifecycle(t *testing.T) {
	api := newTestAPI(t)

	body := `{
		"originLabel": "Churchgate",
		"originLat": 18.9352, "originLng": 72.8264,
		"destLabel": "Andheri",
		"destLat": 19.1197, "destLng": 72.8464,
		"bestMode": "train", "fareAmount": 20, "durationSec": 2400, "distanceKm": 22.5
	}`
	rec := serveRequest(t, api, http.MethodPost, "/api/v1/trips.json?key=test", strings.NewReader(body))
	require.Equal(t, http.StatusOK, rec.Code)

	entry := entryOf(t, decodeEnvelope(t, rec))
	id, ok := entry["id"].(float64)
	require.True(t, ok)
	require.Greater(t, id, float64(0))
	assert.Equal(t, "Churchgate", entry["originLabel"])

	rec = serveRequest(t, api, http.MethodGet, "/api/v1/trips.json?key=test", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, listOf(t, decodeEnvelope(t, rec)), 1)

	target := fmt.Sprintf("/api/v1/trips/%d?key=test", int64(id))
	rec = serveRequest(t, api, http.MethodDelete, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// deleting again reports not found
	rec = serveRequest(t, api, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", decodeEnvelope(t, rec).Text)
}

func TestSaveTripValidation(t *testing.T) {
	api := newTestAPI(t)

	t.Run("missing labels", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodPost, "/api/v1/trips.json?key=test",
			strings.NewReader(`{"originLat": 19.0}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Text, "originLabel")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodPost, "/api/v1/trips.json?key=test",
			strings.NewReader(`{notjson`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad delete id", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodDelete, "/api/v1/trips/abc?key=test", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSOSHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("records alert", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodPost, "/api/v1/sos.json?key=test",
			strings.NewReader(`{"lat": 19.0176, "lng": 72.8562, "message": "need help", "contact": "+91-9800000000"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		entry := entryOf(t, decodeEnvelope(t, rec))
		id, ok := entry["id"].(float64)
		require.True(t, ok)
		assert.Greater(t, id, float64(0))
		assert.Equal(t, "need help", entry["message"])
	})

	t.Run("rejects invalid position", func(t *testing.T) {
		rec := serveRequest(t, api, http.MethodPost, "/api/v1/sos.json?key=test",
			strings.NewReader(`{"lat": 95, "lng": 72.8}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAskHandlerWithoutAssistant(t *testing.T) {
	api := newTestAPI(t)

	rec := serveRequest(t, api, http.MethodPost, "/api/v1/ask.json?key=test",
		strings.NewReader(`{"message": "best way to see the city", "sessionId": "s1"}`))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
