package content

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/moviefav/internal/movie"
	"github.com/lepinkainen/moviefav/internal/omdbmock"
)

func sampleMovie(t *testing.T) movie.Movie {
	t.Helper()
	m, err := movie.Normalize(omdbmock.SampleRecord())
	require.NoError(t, err)
	return m
}

func TestBuildMovieContent_AllSections(t *testing.T) {
	m := sampleMovie(t)

	got := BuildMovieContent(&m, DefaultSections)

	assert.True(t, strings.HasPrefix(got, "## Details\n\n| | |\n|---|---|\n"))
	assert.Contains(t, got, "| **Title** | Guardians of the Galaxy Vol. 2 (2017) |")
	assert.Contains(t, got, "| **Type** | Movie |")
	assert.Contains(t, got, "| **Released** | 05 May 2017 |")
	assert.Contains(t, got, "| **Runtime** | 2h 16m |")
	assert.Contains(t, got, "| **Director** | James Gunn |")
	assert.Contains(t, got, "| **Writers** | James Gunn, Dan Abnett, Andy Lanning |")
	assert.Contains(t, got, "| **Box Office** | $389,813,101 |")
	assert.Contains(t, got, "| **IMDb** | [tt3896198](https://www.imdb.com/title/tt3896198/) |")
	assert.NotContains(t, got, "**Production**")
	assert.NotContains(t, got, "**Website**")

	assert.Contains(t, got, "## Ratings\n\n| Source | Score |\n|--------|-------|\n| Internet Movie Database | 7.6/10 |")
	assert.Contains(t, got, "| IMDb users | ⭐ 7.6/10 (802,014 votes) |")
	assert.Contains(t, got, "| Metascore | 📊 67/100 |")
	assert.Contains(t, got, "| **Average** | 53.2 |")

	assert.Contains(t, got, "## Plot\n\nThe Guardians struggle")
	assert.True(t, strings.HasSuffix(got, "## Awards\n\nNominated for 1 Oscar. 15 wins & 60 nominations total"))
}

func TestBuildMovieContent_SectionSelection(t *testing.T) {
	m := sampleMovie(t)

	got := BuildMovieContent(&m, []string{SectionAwards, SectionPlot})

	assert.NotContains(t, got, "## Details")
	assert.NotContains(t, got, "## Ratings")
	assert.Less(t, strings.Index(got, "## Plot"), strings.Index(got, "## Awards"), "sections keep canonical order")
}

func TestBuildMovieContent_SparseMovie(t *testing.T) {
	m := movie.Movie{ID: "tt0000001", Title: "Untitled", Type: movie.TypeUnknown}

	got := BuildMovieContent(&m, DefaultSections)

	assert.Contains(t, got, "| **Title** | Untitled |")
	assert.Contains(t, got, "| **Type** | Unknown |")
	assert.NotContains(t, got, "## Ratings")
	assert.NotContains(t, got, "## Plot")
	assert.Empty(t, BuildMovieContent(nil, DefaultSections))
}

func TestBuildMovieNote(t *testing.T) {
	m := sampleMovie(t)

	note := BuildMovieNote(m)

	assert.True(t, strings.HasPrefix(note, "---\ntitle: \"Guardians of the Galaxy Vol. 2\"\ntype: movie\n"))
	assert.Contains(t, note, "year: \"2017\"")
	assert.Contains(t, note, "imdb_id: \"tt3896198\"")
	assert.Contains(t, note, "released: \"2017-05-05\"")
	assert.Contains(t, note, "runtime_mins: 136")
	assert.Contains(t, note, "duration: 2h 16m")
	assert.Contains(t, note, "imdb_rating: 7.6")
	assert.Contains(t, note, "  - genre/action\n")
	assert.Contains(t, note, "  - year/2010s\n")
	assert.Contains(t, note, "![](https://m.media-amazon.com/")
	assert.Contains(t, note, "## Ratings")
	assert.Contains(t, note, "[View on IMDb](https://www.imdb.com/title/tt3896198/)")
}

func TestDecadeTag(t *testing.T) {
	tests := map[string]string{
		"2017":      "year/2010s",
		"2015–2019": "year/2010s",
		"1999":      "year/1990s",
		"1942":      "year/pre-1950s",
		"":          "",
		"soon":      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, decadeTag(in), in)
	}
}

func TestNoteFilename(t *testing.T) {
	m := movie.Movie{Title: "Mission: Impossible", Year: "1996"}
	assert.Equal(t, "notes/Mission - Impossible (1996).md", NoteFilename(m, "notes"))
}

func TestRenderCard(t *testing.T) {
	m := sampleMovie(t)

	card := RenderCard(m, true)

	assert.Contains(t, card, "Guardians of the Galaxy Vol. 2 (2017)")
	assert.Contains(t, card, "★ Favorite")
	assert.Contains(t, card, "Movie | PG-13 | 2h 16m | Action")
	assert.Contains(t, card, "7.6/10 (802,014 votes)")
	assert.Contains(t, card, "$389,813,101")
	assert.Contains(t, card, "53.2")

	assert.NotContains(t, RenderCard(m, false), "★ Favorite")
}

func TestRenderSearchResults(t *testing.T) {
	entries := []movie.SearchEntry{
		{ID: "tt3896198", Title: "Guardians of the Galaxy Vol. 2", Year: "2017", Type: movie.TypeMovie},
		{ID: "tt0303461", Title: "Firefly", Year: "2002–2003", Type: movie.TypeSeries},
	}

	out := RenderSearchResults(entries, func(id string) bool { return id == "tt0303461" })

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Guardians of the Galaxy Vol. 2 (2017) [Movie]")
	assert.NotContains(t, lines[0], "★")
	assert.Contains(t, lines[1], "★")
	assert.Contains(t, lines[1], "[TV Series]")

	assert.Equal(t, "No results.", RenderSearchResults(nil, nil))
}

func TestRenderFavorites(t *testing.T) {
	assert.Equal(t, "No favorites yet.", RenderFavorites(nil))

	out := RenderFavorites([]movie.Movie{sampleMovie(t)})
	assert.Contains(t, out, " 1. ")
	assert.Contains(t, out, "tt3896198")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "TEXT", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "yml", want: FormatYAML},
		{in: "md", want: FormatMarkdown},
		{in: "csv", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteMovie_JSONUsesPersistedLayout(t *testing.T) {
	m := sampleMovie(t)

	var buf bytes.Buffer
	require.NoError(t, WriteMovie(&buf, FormatJSON, m, false))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tt3896198", decoded["id"])
	assert.Equal(t, "Guardians of the Galaxy Vol. 2", decoded["title"])
	assert.NotContains(t, decoded, "Title")
}

func TestWriteMovies_YAML(t *testing.T) {
	m := sampleMovie(t)

	var buf bytes.Buffer
	require.NoError(t, WriteMovies(&buf, FormatYAML, []movie.Movie{m}))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "tt3896198", decoded[0]["id"])
}

func TestWriteMovies_EmptyJSONIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMovies(&buf, FormatJSON, nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestWriteSearch_Markdown(t *testing.T) {
	var buf bytes.Buffer
	entries := []movie.SearchEntry{{ID: "tt1", Title: "One", Year: "2001", Type: movie.TypeMovie}}

	require.NoError(t, WriteSearch(&buf, FormatMarkdown, entries, nil))
	assert.Contains(t, buf.String(), "One (2001) [Movie]")
}
