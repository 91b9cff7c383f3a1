package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

func (h *Handler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.store.GetExperiences(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch experiences", err)
		return
	}
	writeJSON(w, http.StatusOK, experiences)
}

func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Experience not found")
		return
	}
	e, ok, err := h.store.GetExperience(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to fetch experience", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Experience not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var in models.InsertExperience
	if !h.decode(w, r, &in, "Failed to create experience") {
		return
	}
	e, err := h.store.CreateExperience(r.Context(), in)
	if err != nil {
		h.serverError(w, r, "Failed to create experience", err)
		return
	}
	h.changed(r, "experiences", e.ID)
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Experience not found")
		return
	}
	var patch models.ExperiencePatch
	if !h.decode(w, r, &patch, "Failed to update experience") {
		return
	}
	e, ok, err := h.store.UpdateExperience(r.Context(), id, patch)
	if err != nil {
		h.serverError(w, r, "Failed to update experience", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Experience not found")
		return
	}
	h.changed(r, "experiences", e.ID)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Experience not found")
		return
	}
	deleted, err := h.store.DeleteExperience(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to delete experience", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Experience not found")
		return
	}
	h.changed(r, "experiences", id)
	writeMessage(w, http.StatusOK, "Experience deleted")
}
