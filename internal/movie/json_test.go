package movie

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMovieJSON_RoundTrip(t *testing.T) {
	m, err := Normalize(loadRawRecord(t, "tt3896198.json"))
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Movie
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, m, decoded)
}

func TestMovieJSON_Layout(t *testing.T) {
	m, err := Normalize(loadRawRecord(t, "tt3896198.json"))
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, "tt3896198", fields["id"])
	assert.Equal(t, "2017-05-05T00:00:00Z", fields["released"])
	assert.Equal(t, m.PosterURL.String(), fields["posterUrl"])
	assert.Equal(t, "movie", fields["type"])
	assert.Equal(t, true, fields["response"])

	// Absent optionals are omitted, wire keys never appear.
	assert.NotContains(t, fields, "dvd")
	assert.NotContains(t, fields, "website")
	assert.NotContains(t, fields, "Title")
	assert.NotContains(t, fields, "imdbID")
}

func TestMovieJSON_DropsMalformedURL(t *testing.T) {
	var m Movie
	require.NoError(t, json.Unmarshal([]byte(`{"id":"tt1","title":"X","posterUrl":"not a url","type":"SERIES"}`), &m))

	assert.Nil(t, m.PosterURL)
	assert.Equal(t, TypeSeries, m.Type)
}

func TestSearchEntryJSON(t *testing.T) {
	entries, err := NormalizeSearch(SearchResponse{
		Response: "True",
		Search: []RawSearchItem{
			{Title: "Alien", Year: "1979", ImdbID: "tt0078748", Type: "movie", Poster: "https://example.com/alien.jpg"},
		},
	})
	require.NoError(t, err)

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"tt0078748","title":"Alien","year":"1979","type":"movie","posterUrl":"https://example.com/alien.jpg"}]`, string(data))

	var decoded []SearchEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entries, decoded)
}

func TestMovieYAML(t *testing.T) {
	m, err := Normalize(loadRawRecord(t, "tt3896198.json"))
	require.NoError(t, err)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "id: tt3896198")
	assert.Contains(t, text, "posterUrl: https://m.media-amazon.com/")
	assert.Contains(t, text, "runtime: 136")
	assert.NotContains(t, text, "dvd:")
}
