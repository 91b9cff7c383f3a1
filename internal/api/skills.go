package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

// GetSkills lists all skills, or only one category with ?category=.
func (h *Handler) GetSkills(w http.ResponseWriter, r *http.Request) {
	var (
		skills []models.Skill
		err    error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		skills, err = h.store.GetSkillsByCategory(r.Context(), category)
	} else {
		skills, err = h.store.GetSkills(r.Context())
	}
	if err != nil {
		h.serverError(w, r, "Failed to fetch skills", err)
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}
	s, ok, err := h.store.GetSkill(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to fetch skill", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var in models.InsertSkill
	if !h.decode(w, r, &in, "Failed to create skill") {
		return
	}
	s, err := h.store.CreateSkill(r.Context(), in)
	if err != nil {
		h.serverError(w, r, "Failed to create skill", err)
		return
	}
	h.changed(r, "skills", s.ID)
	writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}
	var patch models.SkillPatch
	if !h.decode(w, r, &patch, "Failed to update skill") {
		return
	}
	s, ok, err := h.store.UpdateSkill(r.Context(), id, patch)
	if err != nil {
		h.serverError(w, r, "Failed to update skill", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}
	h.changed(r, "skills", s.ID)
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}
	deleted, err := h.store.DeleteSkill(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to delete skill", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Skill not found")
		return
	}
	h.changed(r, "skills", id)
	writeMessage(w, http.StatusOK, "Skill deleted")
}
