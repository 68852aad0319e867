package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/atlasd/internal/directory"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir, err := directory.New([]directory.CountryRecord{
		{Name: "France", CCA3: "FRA", Capital: "Paris", Area: 551695, Borders: []string{"DEU", "ESP"}},
		{Name: "Germany", CCA3: "DEU", Capital: "Berlin", Area: 357114, Borders: []string{"FRA"}},
		{Name: "Spain", CCA3: "ESP", Capital: "Madrid", Area: 505992, Borders: []string{"FRA"}},
	})
	require.NoError(t, err)

	return New(dir, zerolog.Nop(), Options{Addr: ":0", CORSAllowedOrigin: "*"})
}

func TestListCountries(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/countries", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []directory.CountryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "FRA", got[0].CCA3)
	assert.Equal(t, "DEU", got[1].CCA3)
	assert.Equal(t, "ESP", got[2].CCA3)
}

func TestGetCountry(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/countries/FRA", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got directory.Expanded
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "FRA", got.CCA3)
	assert.Equal(t, "France", got.Name)
	require.Len(t, got.BorderCountries, 2)
	assert.Equal(t, "Germany", got.BorderCountries[0].Name)
	assert.Equal(t, "Madrid", got.BorderCountries[1].Capital)
}

func TestGetCountry_NotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/countries/ZZZ", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
	assert.Equal(t, "ZZZ", body["code"])
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/countries", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/countries/FRA", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get("X-Request-Id"), 26) // ULID string length
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.InDelta(t, 3, body["countries"], 0)
}
