package restapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsHandler serves the Prometheus metrics for this instance's registry.
func (api *RestAPI) metricsHandler() http.Handler {
	if api.Metrics == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "metrics not configured", http.StatusNotFound)
		})
	}
	return promhttp.HandlerFor(api.Metrics.Registry, promhttp.HandlerOpts{})
}
