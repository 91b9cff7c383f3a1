package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.GetMessages(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch messages", err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	m, ok, err := h.store.GetMessage(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to fetch message", err)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type countResponse struct {
	Count int `json:"count"`
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.CountUnreadMessages(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to count messages", err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// CreateMessage is the public contact form.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var in models.InsertMessage
	if !h.decode(w, r, &in, "Failed to send message") {
		return
	}
	m, err := h.store.CreateMessage(r.Context(), in)
	if err != nil {
		h.serverError(w, r, "Failed to send message", err)
		return
	}
	h.log.Info(r.Context(), "contact message received", "message_id", m.ID)
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) MarkMessageAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	updated, err := h.store.MarkMessageAsRead(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to update message", err)
		return
	}
	if !updated {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	h.audit(r, "message marked as read", "message_id", id)
	writeMessage(w, http.StatusOK, "Message marked as read")
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	deleted, err := h.store.DeleteMessage(r.Context(), id)
	if err != nil {
		h.serverError(w, r, "Failed to delete message", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Message not found")
		return
	}
	h.audit(r, "message deleted", "message_id", id)
	writeMessage(w, http.StatusOK, "Message deleted")
}
