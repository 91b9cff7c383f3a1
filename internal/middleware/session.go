package middleware

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/auth"
)

// RequireSession answers 401 unless the request carries a live admin session,
// which it then puts into the request context.
func RequireSession(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := sessions.Current(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), s)))
		})
	}
}
