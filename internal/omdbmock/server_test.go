package omdbmock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/moviefav/internal/movie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, srv *httptest.Server, query string) (int, map[string]any) {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + "/?" + query)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestServer_Lookup(t *testing.T) {
	srv := httptest.NewServer(New(DefaultFixtures()).Handler())
	defer srv.Close()

	status, body := get(t, srv, "i=tt3896198&apikey=test")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "True", body["Response"])
	assert.Equal(t, "Guardians of the Galaxy Vol. 2", body["Title"])
	assert.Equal(t, "$389,813,101", body["BoxOffice"])

	status, body = get(t, srv, "i=tt0000000&apikey=test")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "False", body["Response"])
	assert.Equal(t, MsgIncorrectID, body["Error"])
}

func TestServer_Search(t *testing.T) {
	srv := httptest.NewServer(New(DefaultFixtures()).Handler())
	defer srv.Close()

	_, body := get(t, srv, "s=guardians&apikey=test")
	assert.Equal(t, "True", body["Response"])
	assert.Equal(t, "2", body["totalResults"])
	require.Len(t, body["Search"], 2)

	_, body = get(t, srv, "s=nothing+matches&apikey=test")
	assert.Equal(t, "False", body["Response"])
	assert.Equal(t, MsgNotFound, body["Error"])

	_, body = get(t, srv, "apikey=test")
	assert.Equal(t, MsgBadRequest, body["Error"])
}

func TestServer_APIKey(t *testing.T) {
	srv := httptest.NewServer(New(DefaultFixtures(), WithAPIKey("secret")).Handler())
	defer srv.Close()

	status, body := get(t, srv, "i=tt3896198")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, MsgNoAPIKey, body["Error"])

	status, body = get(t, srv, "i=tt3896198&apikey=wrong")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, MsgInvalidAPIKey, body["Error"])

	status, _ = get(t, srv, "i=tt3896198&apikey=secret")
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_RequestLimit(t *testing.T) {
	mock := New(DefaultFixtures(), WithRequestLimit(1))
	srv := httptest.NewServer(mock.Handler())
	defer srv.Close()

	status, _ := get(t, srv, "i=tt3896198&apikey=test")
	assert.Equal(t, http.StatusOK, status)

	status, body := get(t, srv, "i=tt3896198&apikey=test")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, MsgLimitReached, body["Error"])
	assert.Equal(t, int64(2), mock.Requests())
}

func TestSampleRecord_Normalizes(t *testing.T) {
	m, err := movie.Normalize(SampleRecord())
	require.NoError(t, err)

	assert.Equal(t, SampleID, m.ID)
	assert.Equal(t, "2h 16m", m.DisplayRuntime())
}

func TestLoadFixtures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"records":[{"imdbID":"tt1","Title":"Only One","Response":"True"}]}`), 0o644))

	fx, err := LoadFixtures(path)
	require.NoError(t, err)
	require.Len(t, fx.Records, 1)

	_, ok := fx.Lookup("TT1")
	assert.True(t, ok)

	require.NoError(t, os.WriteFile(path, []byte(`{"movies":[]}`), 0o644))
	_, err = LoadFixtures(path)
	assert.Error(t, err)

	_, err = LoadFixtures(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
