package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// fakeCatalog implements driving.CatalogService.
type fakeCatalog struct {
	places []domain.Place
	err    error
}

func (f *fakeCatalog) List(context.Context) ([]domain.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	s := NewServer(":0", &fakeCatalog{})

	rec := doGet(t, s, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ListPlaces(t *testing.T) {
	catalog := &fakeCatalog{places: []domain.Place{
		{
			URL:   "https://pod.example/p/1",
			Title: "Faro",
			Lat:   43.5,
			Lng:   -5.9,
			Ratings: []domain.Rating{
				{Score: 4}, {Score: 2},
			},
			Comments: []domain.Comment{
				{Author: "https://pod.example/card#me", Text: "Nice"},
			},
		},
	}}
	s := NewServer(":0", catalog)

	rec := doGet(t, s, "/places")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK     bool        `json:"ok"`
		Places []placeView `json:"places"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	require.Len(t, body.Places, 1)

	got := body.Places[0]
	assert.Equal(t, "Faro", got.Title)
	assert.InDelta(t, 3.0, got.AverageRating, 1e-9)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Nice", got.Comments[0].Text)
}

func TestServer_ListPlacesEmpty(t *testing.T) {
	s := NewServer(":0", &fakeCatalog{})

	rec := doGet(t, s, "/places")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"places":[]`)
}

func TestServer_ListPlacesError(t *testing.T) {
	s := NewServer(":0", &fakeCatalog{err: errors.New("catalog unavailable")})

	rec := doGet(t, s, "/places")

	// Failures are explicit, never an empty 200.
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "catalog unavailable", body.Error)
}

func TestServer_CORSHeaders(t *testing.T) {
	s := NewServer(":0", &fakeCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
