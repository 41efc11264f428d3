package restapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"margdarshak.in/internal/ai"
	"margdarshak.in/internal/geo"
	"margdarshak.in/internal/models"
)

const maxAskBodyBytes = 64 << 10

type askRequest struct {
	Message   string   `json:"message"`
	SessionID string   `json:"sessionId"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	City      string   `json:"city"`
}

// askHandler answers a free-form travel question. The query's intent is
// classified locally and recorded before the model call; conversation history
// for the session is loaded from the store and the new turns appended after.
func (api *RestAPI) askHandler(w http.ResponseWriter, r *http.Request) {
	if api.Assistant == nil {
		api.sendError(w, r, http.StatusServiceUnavailable, "AI assistant is not configured")
		return
	}

	var req askRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAskBodyBytes)).Decode(&req); err != nil {
		api.sendError(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Message == "" {
		api.sendError(w, r, http.StatusBadRequest, "message is required")
		return
	}
	if req.SessionID == "" {
		api.sendError(w, r, http.StatusBadRequest, "sessionId is required")
		return
	}

	query := ai.Query{Message: req.Message, City: req.City}
	if req.Lat != nil && req.Lng != nil {
		p := geo.Point{Lat: *req.Lat, Lng: *req.Lng}
		if p.Valid() {
			query.Location = &p
		}
	}

	if intent := ai.PrimaryIntent(req.Message); intent != nil && api.TripStore != nil {
		if err := api.TripStore.SaveIntent(r.Context(), req.SessionID, req.Message, intent.Type, intent.Confidence); err != nil {
			api.Logger.Warn("failed to record intent", slog.String("error", err.Error()))
		}
	}

	if api.TripStore != nil {
		history, err := api.TripStore.GetAIHistory(r.Context(), req.SessionID, 0)
		if err != nil {
			api.Logger.Warn("failed to load conversation history", slog.String("error", err.Error()))
		}
		for _, h := range history {
			query.History = append(query.History, ai.Message{Role: h.Role, Content: h.Content})
		}
	}

	if api.Weather != nil && query.Location != nil {
		report, err := api.Weather.Current(r.Context(), *query.Location)
		if err == nil {
			query.WeatherContext = weatherPromptContext(report.WeatherLabel, report.Temperature,
				report.FeelsLike, report.Humidity, report.WindSpeedKmh,
				report.RainProbability, report.AQI, report.AQILabel)
		}
	}

	plan, err := api.Assistant.Ask(r.Context(), query)
	if err != nil {
		if api.Metrics != nil {
			api.Metrics.AIRequestsTotal.WithLabelValues("error").Inc()
		}
		api.serverErrorResponse(w, r, err)
		return
	}
	if api.Metrics != nil {
		api.Metrics.AIRequestsTotal.WithLabelValues("ok").Inc()
	}

	if api.TripStore != nil {
		if err := api.TripStore.SaveAIHistory(r.Context(), req.SessionID, "user", req.Message); err != nil {
			api.Logger.Warn("failed to save user turn", slog.String("error", err.Error()))
		}
		if err := api.TripStore.SaveAIHistory(r.Context(), req.SessionID, "assistant", plan.Summary); err != nil {
			api.Logger.Warn("failed to save assistant turn", slog.String("error", err.Error()))
		}
	}

	api.sendResponse(w, r, models.NewEntryResponse(plan, api.Clock))
}

// weatherPromptContext renders current conditions for prompt injection.
func weatherPromptContext(label string, temp, feelsLike, humidity, wind float64, rainProb, aqi int, aqiLabel string) string {
	ctx := fmt.Sprintf("\n\n[WEATHER] Current conditions: %s, %.1f°C (feels like %.1f°C), humidity %.0f%%, wind %.1f km/h",
		label, temp, feelsLike, humidity, wind)
	if rainProb > 0 {
		ctx += fmt.Sprintf(", rain probability %d%%", rainProb)
	}
	if aqi > 0 {
		ctx += fmt.Sprintf(". Air Quality: AQI %d (%s)", aqi, aqiLabel)
	}
	ctx += ". Adapt recommendations based on these conditions (e.g., suggest indoor places during rain/poor AQI, warn about heat/UV)."
	return ctx
}
