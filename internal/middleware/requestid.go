package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aTrapDeer/portfolio-backend/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns every request an id (reusing a sane X-Request-ID from
// the caller), exposes it in the response header and the context, and writes
// one access-log line when the handler returns.
func RequestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startedAt := time.Now()

			requestID := normalizeRequestID(r.Header.Get(RequestIDHeader))
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			r = r.WithContext(logging.WithRequestID(r.Context(), requestID))
			r, route := withRouteInfo(r)
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.Info(r.Context(), "request",
				"method", r.Method,
				"route", route.template,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"latency_ms", float64(time.Since(startedAt).Microseconds())/1000.0,
				"client_ip", clientIP(r),
			)
		})
	}
}

func normalizeRequestID(raw string) string {
	candidate := strings.TrimSpace(raw)
	if len(candidate) > 128 {
		candidate = candidate[:128]
	}
	return candidate
}
