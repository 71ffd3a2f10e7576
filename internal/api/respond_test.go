package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akhenakh/kepler"
)

func TestWriteError(t *testing.T) {
	_, domainErr := kepler.Solve(1, 2, nil)

	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		wantDesc bool
	}{
		{"bad request", fmt.Errorf("%w: nope", ErrBadRequest), http.StatusBadRequest, "bad_request", true},
		{"domain", domainErr, http.StatusUnprocessableEntity, "domain_error", true},
		{"not converged", ErrNotConverged, http.StatusUnprocessableEntity, "not_converged", true},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal_error", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err)

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body["error"] != tt.code {
				t.Fatalf("expected error code %s, got %q", tt.code, body["error"])
			}
			if _, ok := body["error_description"]; ok != tt.wantDesc {
				t.Fatalf("error_description present = %v, want %v", ok, tt.wantDesc)
			}
		})
	}
}
