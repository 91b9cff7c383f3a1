package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/auth"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	User *auth.Session `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req, "Invalid credentials") {
		return
	}

	// user is nil when the name is unknown; VerifyCredentials handles that.
	user, _, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		h.serverError(w, r, "Login failed", err)
		return
	}
	if !auth.VerifyCredentials(user, req.Password) {
		h.log.Warn(r.Context(), "failed login", "username", req.Username)
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s, err := h.sessions.Login(w, r, *user)
	if err != nil {
		h.serverError(w, r, "Login failed", err)
		return
	}
	h.log.Info(r.Context(), "admin logged in", "user_id", s.UserID)
	writeJSON(w, http.StatusOK, userResponse{User: s})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		h.serverError(w, r, "Logout failed", err)
		return
	}
	writeMessage(w, http.StatusOK, "Logged out")
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessions.Current(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: s})
}
