package restapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"margdarshak.in/internal/geo"
	"margdarshak.in/internal/logging"
	"margdarshak.in/internal/models"
	"margdarshak.in/internal/utils"
)

// parseTripQuery extracts and validates the origin and destination
// coordinates shared by the trip-scoped endpoints.
func parseTripQuery(r *http.Request) (from, to geo.Point, err error) {
	q := r.URL.Query()

	from.Lat, err = utils.ParseFloatParam(q, "fromLat")
	if err != nil {
		return from, to, err
	}
	from.Lng, err = utils.ParseFloatParam(q, "fromLng")
	if err != nil {
		return from, to, err
	}
	to.Lat, err = utils.ParseFloatParam(q, "toLat")
	if err != nil {
		return from, to, err
	}
	to.Lng, err = utils.ParseFloatParam(q, "toLng")
	if err != nil {
		return from, to, err
	}

	if !from.Valid() {
		return from, to, fmt.Errorf("origin coordinates out of range: %v", from)
	}
	if !to.Valid() {
		return from, to, fmt.Errorf("destination coordinates out of range: %v", to)
	}
	return from, to, nil
}

// compareRoutesHandler evaluates every transport mode between two points and
// returns the scored offers with exactly one marked best.
func (api *RestAPI) compareRoutesHandler(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseTripQuery(r)
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	comparison, err := api.Engine.Compare(r.Context(), from, to)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if api.Metrics != nil {
		api.Metrics.ComparisonsTotal.WithLabelValues(string(comparison.Best().Mode)).Inc()
		if comparison.UsingFallback {
			api.Metrics.RoadFallbackTotal.Inc()
		}
	}

	logging.LogOperation(api.Logger, "compare-routes",
		slog.String("best_mode", string(comparison.Best().Mode)),
		slog.Int("offer_count", len(comparison.Offers)))

	api.sendResponse(w, r, models.NewEntryResponse(comparison, api.Clock))
}
