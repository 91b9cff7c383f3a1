package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIPFromHeader replaces r.RemoteAddr with the address carried in header,
// so the rate limiters and the access log key on the visitor rather than the
// proxy. Only enable it behind a proxy that overwrites the header. For
// comma-separated values (X-Forwarded-For) the first entry wins. Missing or
// unparseable values leave RemoteAddr alone.
func ClientIPFromHeader(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if header == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(header)
			if i := strings.IndexByte(raw, ','); i >= 0 {
				raw = raw[:i]
			}
			if ip := net.ParseIP(strings.TrimSpace(raw)); ip != nil {
				r.RemoteAddr = net.JoinHostPort(ip.String(), "0")
			}
			next.ServeHTTP(w, r)
		})
	}
}
