package app

import (
	"crypto/subtle"
	"net/http"
)

// RequestHasInvalidAPIKey checks the "key" query parameter carried by every
// authenticated /api/v1 route.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	key := r.URL.Query().Get("key")
	return app.IsInvalidAPIKey(key)
}

// IsInvalidAPIKey reports whether key matches none of the configured API keys.
func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	validKeys := app.Config.ApiKeys
	for _, validKey := range validKeys {
		// Use constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(key), []byte(validKey)) == 1 {
			return false
		}
	}

	return true
}
