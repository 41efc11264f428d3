package restapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"margdarshak.in/internal/models"
	"margdarshak.in/internal/tripstore"
	"margdarshak.in/internal/utils"
)

const maxTripBodyBytes = 16 << 10

func (api *RestAPI) saveTripHandler(w http.ResponseWriter, r *http.Request) {
	if api.TripStore == nil {
		api.sendError(w, r, http.StatusServiceUnavailable, "trip storage is not configured")
		return
	}

	var trip tripstore.SavedTrip
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTripBodyBytes)).Decode(&trip); err != nil {
		api.sendError(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if trip.OriginLabel == "" || trip.DestLabel == "" {
		api.sendError(w, r, http.StatusBadRequest, "originLabel and destLabel are required")
		return
	}

	saved, err := api.TripStore.SaveTrip(r.Context(), trip)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(saved, api.Clock))
}

func (api *RestAPI) listTripsHandler(w http.ResponseWriter, r *http.Request) {
	if api.TripStore == nil {
		api.sendError(w, r, http.StatusServiceUnavailable, "trip storage is not configured")
		return
	}

	limit, err := utils.ParseOptionalIntParam(r.URL.Query(), "limit", 0)
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trips, err := api.TripStore.ListSavedTrips(r.Context(), limit)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if trips == nil {
		trips = []tripstore.SavedTrip{}
	}

	api.sendResponse(w, r, models.NewListResponse(trips, api.Clock))
}

func (api *RestAPI) deleteTripHandler(w http.ResponseWriter, r *http.Request) {
	if api.TripStore == nil {
		api.sendError(w, r, http.StatusServiceUnavailable, "trip storage is not configured")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	if err := api.TripStore.DeleteSavedTrip(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(map[string]any{"deleted": id}, api.Clock))
}
