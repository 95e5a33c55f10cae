package server

import (
	"encoding/json"
	"net/http"

	"github.com/mesh-intelligence/todolist/internal/validate"
)

// errorBody is the JSON envelope for every non-2xx response.
type errorBody struct {
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a plain error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeFieldErrors writes a 400 with per-field validation detail.
func writeFieldErrors(w http.ResponseWriter, fe *validate.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, errorBody{
		Error:       "validation failed",
		FieldErrors: fe.Fields,
	})
}
