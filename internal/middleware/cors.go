package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the configured frontends to call the API with credentials so
// the session cookie travels along. No origins means no cross-origin access.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	}
	if len(allowedOrigins) == 0 {
		// rs/cors reads an empty list as "*"
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(opts).Handler
}
