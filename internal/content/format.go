package content

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/moviefav/internal/movie"
)

// Format selects how results are written to the terminal or to files.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat accepts a format name case-insensitively; "md" and "yml" are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: text, json, yaml, markdown)", s)
	}
}

// WriteMovie writes a single movie in the requested format.
func WriteMovie(w io.Writer, format Format, m movie.Movie, favorite bool) error {
	switch format {
	case FormatText:
		return writeLine(w, RenderCard(m, favorite))
	case FormatMarkdown:
		return writeLine(w, "# "+DisplayTitle(m)+"\n\n"+BuildMovieContent(&m, DefaultSections))
	default:
		return encode(w, format, m)
	}
}

// WriteMovies writes a list of movies in the requested format.
func WriteMovies(w io.Writer, format Format, movies []movie.Movie) error {
	if movies == nil {
		movies = []movie.Movie{}
	}
	switch format {
	case FormatText:
		return writeLine(w, RenderFavorites(movies))
	case FormatMarkdown:
		parts := make([]string, 0, len(movies))
		for i := range movies {
			parts = append(parts, "# "+DisplayTitle(movies[i])+"\n\n"+BuildMovieContent(&movies[i], DefaultSections))
		}
		return writeLine(w, strings.Join(parts, "\n\n---\n\n"))
	default:
		return encode(w, format, movies)
	}
}

// WriteSearch writes search entries in the requested format.
func WriteSearch(w io.Writer, format Format, entries []movie.SearchEntry, isFavorite func(id string) bool) error {
	if entries == nil {
		entries = []movie.SearchEntry{}
	}
	switch format {
	case FormatText, FormatMarkdown:
		return writeLine(w, RenderSearchResults(entries, isFavorite))
	default:
		return encode(w, format, entries)
	}
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
