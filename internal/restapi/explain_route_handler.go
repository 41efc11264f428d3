package restapi

import (
	"log/slog"
	"net/http"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/models"
	"margdarshak.in/internal/transit"
)

// explainRouteHandler runs a comparison and explains why the winning offer
// beat the alternatives. Weather enrichment is best effort: if the lookup
// fails the explanation simply skips the air quality and rain rules.
func (api *RestAPI) explainRouteHandler(w http.ResponseWriter, r *http.Request) {
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

	var weatherCtx *transit.WeatherContext
	if api.Weather != nil {
		report, err := api.Weather.Current(r.Context(), from)
		if err != nil {
			api.Logger.Warn("weather lookup failed, explaining without it",
				slog.String("error", err.Error()))
		} else {
			weatherCtx = report.ExplainContext()
		}
	}

	explanation := transit.ExplainBest(
		comparison.Best(), comparison.Offers, weatherCtx,
		clock.CurrentTimeOfDay(api.Clock).Hour)

	entry := map[string]interface{}{
		"best":        comparison.Best(),
		"explanation": explanation,
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.Clock))
}
