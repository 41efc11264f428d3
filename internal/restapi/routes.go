package restapi

import (
	"net/http"
)

// rateLimitAndValidateAPIKey combines rate limiting, API key validation, and compression
func rateLimitAndValidateAPIKey(api *RestAPI, finalHandler http.HandlerFunc) http.Handler {
	// Create the handler chain: API key validation -> rate limiting -> compression -> final handler
	compressedHandler := CompressionMiddleware(finalHandler)

	var rateLimitedHandler http.Handler
	if api.rateLimiter != nil {
		rateLimitedHandler = api.rateLimiter.Handler()(compressedHandler)
	} else {
		// Fallback for tests that don't use NewRestAPI constructor
		rateLimitedHandler = compressedHandler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First validate API key
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		// Then apply rate limiting and compression
		rateLimitedHandler.ServeHTTP(w, r)
	})
}

// SetRoutes registers all API endpoints with compression applied per route
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	// Health and metrics endpoints - no authentication required
	mux.HandleFunc("GET /healthz", api.healthHandler)
	mux.Handle("GET /metrics", api.metricsHandler())

	mux.Handle("GET /api/v1/current-time.json", rateLimitAndValidateAPIKey(api, api.currentTimeHandler))
	mux.Handle("GET /api/v1/compare-routes.json", rateLimitAndValidateAPIKey(api, api.compareRoutesHandler))
	mux.Handle("GET /api/v1/explain-route.json", rateLimitAndValidateAPIKey(api, api.explainRouteHandler))
	// Stop data is static, so responses are cacheable for a few minutes
	mux.Handle("GET /api/v1/stops-for-location.json",
		CacheControlMiddleware(300, rateLimitAndValidateAPIKey(api, api.stopsForLocationHandler)))
	mux.Handle("GET /api/v1/safety-for-route.json", rateLimitAndValidateAPIKey(api, api.safetyForRouteHandler))

	mux.Handle("POST /api/v1/ask.json", rateLimitAndValidateAPIKey(api, api.askHandler))

	mux.Handle("POST /api/v1/trips.json", rateLimitAndValidateAPIKey(api, api.saveTripHandler))
	mux.Handle("GET /api/v1/trips.json", rateLimitAndValidateAPIKey(api, api.listTripsHandler))
	mux.Handle("DELETE /api/v1/trips/{id}", rateLimitAndValidateAPIKey(api, api.deleteTripHandler))

	mux.Handle("POST /api/v1/sos.json", rateLimitAndValidateAPIKey(api, api.sosHandler))
}

// SetupAPIRoutes creates and configures the API router with all routes registered
func (api *RestAPI) SetupAPIRoutes() http.Handler {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	return mux
}
