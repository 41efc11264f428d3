package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"margdarshak.in/internal/geo"
	"margdarshak.in/internal/models"
	"margdarshak.in/internal/tripstore"
)

// sosHandler records an emergency alert with the reporter's position. The
// event is persisted and echoed back so clients can show a confirmation.
func (api *RestAPI) sosHandler(w http.ResponseWriter, r *http.Request) {
	if api.TripStore == nil {
		api.sendError(w, r, http.StatusServiceUnavailable, "trip storage is not configured")
		return
	}

	var event tripstore.SOSEvent
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTripBodyBytes)).Decode(&event); err != nil {
		api.sendError(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if !(geo.Point{Lat: event.Lat, Lng: event.Lng}).Valid() {
		api.sendError(w, r, http.StatusBadRequest, "valid lat and lng are required")
		return
	}

	saved, err := api.TripStore.LogSOS(r.Context(), event)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.Logger.Warn("sos alert recorded",
		slog.Int64("id", saved.ID),
		slog.Float64("lat", saved.Lat),
		slog.Float64("lng", saved.Lng))

	api.sendResponse(w, r, models.NewEntryResponse(saved, api.Clock))
}
