package restapi

import (
	"net/http"

	"margdarshak.in/internal/geo"
	"margdarshak.in/internal/models"
	"margdarshak.in/internal/transit"
	"margdarshak.in/internal/utils"
)

const (
	defaultStopRadiusKm = 1.0
	maxStopRadiusKm     = 5.0
	defaultStopCount    = 10
	maxStopCount        = 50
)

// stopsForLocationHandler returns bus stops near a point, closest first.
func (api *RestAPI) stopsForLocationHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := utils.ParseFloatParam(q, "lat")
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	lng, err := utils.ParseFloatParam(q, "lng")
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	radiusKm, err := utils.ParseOptionalFloatParam(q, "radiusKm", defaultStopRadiusKm)
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	maxCount, err := utils.ParseOptionalIntParam(q, "maxCount", defaultStopCount)
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p := geo.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		api.sendError(w, r, http.StatusBadRequest, "coordinates out of range")
		return
	}
	if radiusKm <= 0 || radiusKm > maxStopRadiusKm {
		radiusKm = defaultStopRadiusKm
	}
	if maxCount <= 0 || maxCount > maxStopCount {
		maxCount = defaultStopCount
	}

	stops := api.Engine.StopsNear(p, radiusKm, maxCount)
	if stops == nil {
		stops = []transit.NearbyStop{}
	}
	api.sendResponse(w, r, models.NewListResponse(stops, api.Clock))
}
