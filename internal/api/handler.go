// Package api exposes the portfolio over JSON/HTTP: public reads, the contact
// form, and the session-protected admin endpoints.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aTrapDeer/portfolio-backend/internal/auth"
	"github.com/aTrapDeer/portfolio-backend/internal/logging"
	"github.com/aTrapDeer/portfolio-backend/internal/notify"
	"github.com/aTrapDeer/portfolio-backend/internal/storage"
	"github.com/aTrapDeer/portfolio-backend/internal/validation"
)

// Handler serves every API route. Construct it with NewHandler.
type Handler struct {
	store    storage.Storage
	sessions *auth.SessionManager
	validate *validation.Validator
	notifier notify.Notifier
	log      logging.Logger
}

func NewHandler(store storage.Storage, sessions *auth.SessionManager, notifier notify.Notifier, log logging.Logger) *Handler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Handler{
		store:    store,
		sessions: sessions,
		validate: validation.New(),
		notifier: notifier,
		log:      log.With("component", "api"),
	}
}

var errBadID = errors.New("invalid id")

// idParam reads the {id} route variable. The route pattern only admits digits,
// so failure here means the number does not fit in an int.
func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// audit logs an admin write together with the acting session.
func (h *Handler) audit(r *http.Request, msg string, args ...any) {
	if s, ok := auth.FromContext(r.Context()); ok {
		args = append(args, "user_id", s.UserID, "username", s.Username)
	}
	h.log.Info(r.Context(), msg, args...)
}

// changed tells the frontend that public content of the given kind moved.
func (h *Handler) changed(r *http.Request, kind string, id int) {
	h.audit(r, "content changed", "kind", kind, "id", id, "method", r.Method)
	if err := h.notifier.Notify(r.Context(), notify.Change{Kind: kind, ID: id}); err != nil {
		h.log.Warn(r.Context(), "revalidation not sent", "kind", kind, "id", id, "error", err)
	}
}
