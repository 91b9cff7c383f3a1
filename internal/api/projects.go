package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.GetProjects(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) GetFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.GetFeaturedProjects(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch featured projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	p, ok, err := h.store.GetProject(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to fetch project", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in models.InsertProject
	if !h.decode(w, r, &in, "Failed to create project") {
		return
	}
	p, err := h.store.CreateProject(r.Context(), in)
	if err != nil {
		h.serverError(w, r, "Failed to create project", err)
		return
	}
	h.changed(r, "projects", p.ID)
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	var patch models.ProjectPatch
	if !h.decode(w, r, &patch, "Failed to update project") {
		return
	}
	p, ok, err := h.store.UpdateProject(r.Context(), id, patch)
	if err != nil {
		h.serverError(w, r, "Failed to update project", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	h.changed(r, "projects", p.ID)
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	deleted, err := h.store.DeleteProject(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to delete project", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	h.changed(r, "projects", id)
	writeMessage(w, http.StatusOK, "Project deleted")
}
