package restapi

import (
	"net/http"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/dataset"
	"margdarshak.in/internal/models"
	"margdarshak.in/internal/transit"
)

// safetyForRouteHandler returns the zone-based safety assessment for a trip
// without running a full mode comparison.
func (api *RestAPI) safetyForRouteHandler(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseTripQuery(r)
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tod := clock.CurrentTimeOfDay(api.Clock)
	city := dataset.BusCityAt(from)
	assessment := transit.AssessRouteSafety(city, from, to, tod.IsNight)

	api.sendResponse(w, r, models.NewEntryResponse(assessment, api.Clock))
}
