package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aTrapDeer/portfolio-backend/internal/validation"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageBody{Message: message})
}

// decode reads a JSON body into dst and validates it. On failure it writes a
// 400 carrying failMsg and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, failMsg string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		reason := "request body must be a JSON object"
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			reason = "request body is empty"
		case errors.As(err, &tooLarge):
			reason = "request body is too large"
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Message: failMsg, Errors: map[string]string{"body": reason}})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorBody{Message: failMsg, Errors: verr.Fields})
			return false
		}
		writeMessage(w, http.StatusBadRequest, failMsg)
		return false
	}
	return true
}

// serverError logs err with the request id and answers 500 with a generic message.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.log.Error(r.Context(), message, "error", err, "method", r.Method, "path", r.URL.Path)
	writeMessage(w, http.StatusInternalServerError, message)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Not found")
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
}
