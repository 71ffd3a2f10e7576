package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akhenakh/kepler"
)

// ErrBadRequest marks client errors that are not domain violations, such as
// malformed JSON or a missing field.
var ErrBadRequest = errors.New("bad request")

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code. Internal errors omit the
// description.
func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	body := errorBody{Error: code}
	if status != http.StatusInternalServerError {
		body.Description = err.Error()
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, kepler.ErrOutOfRange), errors.Is(err, kepler.ErrNotFinite):
		return http.StatusUnprocessableEntity, "domain_error"
	case errors.Is(err, ErrNotConverged):
		return http.StatusUnprocessableEntity, "not_converged"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
