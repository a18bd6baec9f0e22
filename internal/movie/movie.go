package movie

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

// Type classifies an OMDb title.
type Type string

const (
	TypeMovie   Type = "movie"
	TypeSeries  Type = "series"
	TypeEpisode Type = "episode"
	TypeGame    Type = "game"
	TypeUnknown Type = "unknown"
)

// ParseType maps an OMDb type string to a Type, case-insensitively.
// Anything unrecognised becomes TypeUnknown.
func ParseType(s string) Type {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeMovie, TypeSeries, TypeEpisode, TypeGame:
		return t
	default:
		return TypeUnknown
	}
}

// DisplayName returns the human readable label for the type.
func (t Type) DisplayName() string {
	switch t {
	case TypeMovie:
		return "Movie"
	case TypeSeries:
		return "TV Series"
	case TypeEpisode:
		return "TV Episode"
	case TypeGame:
		return "Video Game"
	default:
		return "Unknown"
	}
}

// Rating is a third-party score kept verbatim, e.g. {"Rotten Tomatoes", "85%"}.
type Rating struct {
	Source string `json:"source" yaml:"source"`
	Value  string `json:"value" yaml:"value"`
}

// Movie is the normalized domain representation of an OMDb title.
// Optional fields are nil when OMDb sent "N/A" or something unparsable.
type Movie struct {
	ID         string
	Title      string
	Year       string
	Rated      string
	Released   *time.Time
	Runtime    *int // minutes
	Genres     []string
	Directors  []string
	Writers    []string
	Actors     []string
	Plot       string
	Language   string
	Country    string
	Awards     string
	PosterURL  *url.URL
	Ratings    []Rating
	Metascore  *int
	IMDbRating *float64
	IMDbVotes  *int
	Type       Type
	DVD        *time.Time
	BoxOffice  *float64
	Production string
	Website    *url.URL
	ResponseOK bool
}

// SearchEntry is a lightweight search hit.
type SearchEntry struct {
	ID        string
	Title     string
	Year      string
	Type      Type
	PosterURL *url.URL
}

// Clone returns a deep copy of m that shares no slices or pointed-to values.
func (m Movie) Clone() Movie {
	c := m
	c.Released = clonePtr(m.Released)
	c.Runtime = clonePtr(m.Runtime)
	c.Genres = slices.Clone(m.Genres)
	c.Directors = slices.Clone(m.Directors)
	c.Writers = slices.Clone(m.Writers)
	c.Actors = slices.Clone(m.Actors)
	c.PosterURL = clonePtr(m.PosterURL)
	c.Ratings = slices.Clone(m.Ratings)
	c.Metascore = clonePtr(m.Metascore)
	c.IMDbRating = clonePtr(m.IMDbRating)
	c.IMDbVotes = clonePtr(m.IMDbVotes)
	c.DVD = clonePtr(m.DVD)
	c.BoxOffice = clonePtr(m.BoxOffice)
	c.Website = clonePtr(m.Website)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
