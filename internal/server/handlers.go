package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rshade/atlasd/internal/directory"
	"github.com/rshade/atlasd/internal/logging"
)

// errorBody is the JSON shape of every non-200 response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// healthBody is the JSON shape of the health endpoint response.
type healthBody struct {
	Status    string `json:"status"`
	Countries int    `json:"countries"`
}

// handleListCountries serves GET /countries: the full dataset, insertion
// order, no filtering or pagination.
func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.dir.ListAll())
}

// handleGetCountry serves GET /countries/{code}: the record whose cca3
// matches the path parameter exactly, with border codes expanded to full
// records. An unresolved code is an explicit 404, never an unguarded failure.
func (s *Server) handleGetCountry(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	expanded, err := s.dir.GetExpanded(code)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			writeJSON(w, r, http.StatusNotFound, errorBody{Error: "not found", Code: code})
			return
		}
		logging.FromContext(r.Context()).Error().Err(err).Str("code", code).Msg("lookup failed")
		writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	writeJSON(w, r, http.StatusOK, expanded)
}

// handleHealthz reports process liveness and the loaded record count.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthBody{Status: "ok", Countries: s.dir.Len()})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("encoding response")
	}
}
