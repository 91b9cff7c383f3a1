package api

import (
	"net/http"
)

// Stats backs the admin dashboard counters.
type Stats struct {
	TotalProjects    int `json:"totalProjects"`
	TotalSkills      int `json:"totalSkills"`
	TotalExperiences int `json:"totalExperiences"`
	TotalMessages    int `json:"totalMessages"`
	UnreadMessages   int `json:"unreadMessages"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var s Stats

	projects, err := h.store.GetProjects(ctx)
	if err != nil {
		h.serverError(w, r, "Failed to fetch stats", err)
		return
	}
	s.TotalProjects = len(projects)

	skills, err := h.store.GetSkills(ctx)
	if err != nil {
		h.serverError(w, r, "Failed to fetch stats", err)
		return
	}
	s.TotalSkills = len(skills)

	experiences, err := h.store.GetExperiences(ctx)
	if err != nil {
		h.serverError(w, r, "Failed to fetch stats", err)
		return
	}
	s.TotalExperiences = len(experiences)

	messages, err := h.store.GetMessages(ctx)
	if err != nil {
		h.serverError(w, r, "Failed to fetch stats", err)
		return
	}
	s.TotalMessages = len(messages)
	for _, m := range messages {
		if !m.Read {
			s.UnreadMessages++
		}
	}

	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
