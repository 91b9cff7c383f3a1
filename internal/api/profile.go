package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

// GetProfile answers with the profile, or JSON null when none exists yet.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, _, err := h.store.GetProfile(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Profile not found")
		return
	}
	var patch models.ProfilePatch
	if !h.decode(w, r, &patch, "Failed to update profile") {
		return
	}

	p, ok, err := h.store.UpdateProfile(r.Context(), id, patch)
	if err != nil {
		h.serverError(w, r, "Failed to update profile", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Profile not found")
		return
	}
	h.changed(r, "profile", p.ID)
	writeJSON(w, http.StatusOK, p)
}
