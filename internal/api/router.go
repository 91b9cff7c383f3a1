package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aTrapDeer/portfolio-backend/internal/middleware"
)

// RouterOptions carries the optional pieces wired around the handlers.
type RouterOptions struct {
	// LoginLimiter and ContactLimiter throttle POST /api/auth/login and
	// POST /api/messages per client IP. Nil disables the limit.
	LoginLimiter   *middleware.LimiterStore
	ContactLimiter *middleware.LimiterStore
	// Metrics, when set, serves GET /metrics and counts rejected requests.
	Metrics *middleware.Metrics
}

// NewRouter registers every route on a gorilla/mux router.
func NewRouter(h *Handler, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.TagRoute)
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	requireSession := middleware.RequireSession(h.sessions)
	admin := func(fn http.HandlerFunc) http.Handler { return requireSession(fn) }

	// Auth
	api.Handle("/auth/login", limited(opts.LoginLimiter, opts.Metrics, "login", http.HandlerFunc(h.Login))).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	// Profile
	api.HandleFunc("/profile", h.GetProfile).Methods(http.MethodGet)
	api.Handle("/profile/{id:[0-9]+}", admin(h.UpdateProfile)).Methods(http.MethodPut)

	// Projects; /featured is registered before /{id} so it is not shadowed.
	api.HandleFunc("/projects", h.GetProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/featured", h.GetFeaturedProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id:[0-9]+}", h.GetProject).Methods(http.MethodGet)
	api.Handle("/projects", admin(h.CreateProject)).Methods(http.MethodPost)
	api.Handle("/projects/{id:[0-9]+}", admin(h.UpdateProject)).Methods(http.MethodPut)
	api.Handle("/projects/{id:[0-9]+}", admin(h.DeleteProject)).Methods(http.MethodDelete)

	// Skills
	api.HandleFunc("/skills", h.GetSkills).Methods(http.MethodGet)
	api.HandleFunc("/skills/{id:[0-9]+}", h.GetSkill).Methods(http.MethodGet)
	api.Handle("/skills", admin(h.CreateSkill)).Methods(http.MethodPost)
	api.Handle("/skills/{id:[0-9]+}", admin(h.UpdateSkill)).Methods(http.MethodPut)
	api.Handle("/skills/{id:[0-9]+}", admin(h.DeleteSkill)).Methods(http.MethodDelete)

	// Experiences
	api.HandleFunc("/experiences", h.GetExperiences).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{id:[0-9]+}", h.GetExperience).Methods(http.MethodGet)
	api.Handle("/experiences", admin(h.CreateExperience)).Methods(http.MethodPost)
	api.Handle("/experiences/{id:[0-9]+}", admin(h.UpdateExperience)).Methods(http.MethodPut)
	api.Handle("/experiences/{id:[0-9]+}", admin(h.DeleteExperience)).Methods(http.MethodDelete)

	// Messages; only creating one is public.
	api.Handle("/messages", limited(opts.ContactLimiter, opts.Metrics, "contact", http.HandlerFunc(h.CreateMessage))).Methods(http.MethodPost)
	api.Handle("/messages", admin(h.GetMessages)).Methods(http.MethodGet)
	api.Handle("/messages/unread-count", admin(h.GetUnreadCount)).Methods(http.MethodGet)
	api.Handle("/messages/{id:[0-9]+}", admin(h.GetMessage)).Methods(http.MethodGet)
	api.Handle("/messages/{id:[0-9]+}/read", admin(h.MarkMessageAsRead)).Methods(http.MethodPut)
	api.Handle("/messages/{id:[0-9]+}", admin(h.DeleteMessage)).Methods(http.MethodDelete)

	// Admin
	api.Handle("/admin/stats", admin(h.GetStats)).Methods(http.MethodGet)

	return r
}

func limited(store *middleware.LimiterStore, m *middleware.Metrics, name string, next http.Handler) http.Handler {
	if store == nil {
		return next
	}
	var onLimit func(*http.Request)
	if m != nil {
		onLimit = m.RateLimited(name)
	}
	return middleware.RateLimit(store, onLimit)(next)
}
