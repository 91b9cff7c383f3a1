// Package middleware holds the net/http middleware wrapped around the API
// router: request ids and access logs, metrics, rate limiting, CORS and the
// session guard.
package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/gorilla/mux"
)

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// clientIP is the remote host without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type routeCtxKey struct{}

// routeInfo is filled in by TagRoute once the router has matched a request, so
// outer middleware can label logs and metrics with the route template.
type routeInfo struct {
	template string
}

const unmatchedRoute = "unmatched"

func withRouteInfo(r *http.Request) (*http.Request, *routeInfo) {
	if ri, ok := r.Context().Value(routeCtxKey{}).(*routeInfo); ok {
		return r, ri
	}
	ri := &routeInfo{template: unmatchedRoute}
	return r.WithContext(context.WithValue(r.Context(), routeCtxKey{}, ri)), ri
}

// TagRoute is a mux middleware recording the matched route template.
func TagRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ri, ok := r.Context().Value(routeCtxKey{}).(*routeInfo); ok {
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					ri.template = tmpl
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
