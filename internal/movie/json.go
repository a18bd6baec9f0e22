package movie

import (
	"encoding/json"
	"net/url"
	"time"
)

// storedMovie is the persisted layout of a Movie. It differs from the wire
// shape: keys are lower camel case, dates are RFC 3339 and absent values are
// omitted.
type storedMovie struct {
	ID         string     `json:"id" yaml:"id"`
	Title      string     `json:"title" yaml:"title"`
	Year       string     `json:"year,omitempty" yaml:"year,omitempty"`
	Rated      string     `json:"rated,omitempty" yaml:"rated,omitempty"`
	Released   *time.Time `json:"released,omitempty" yaml:"released,omitempty"`
	Runtime    *int       `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	Genres     []string   `json:"genres,omitempty" yaml:"genres,omitempty"`
	Directors  []string   `json:"directors,omitempty" yaml:"directors,omitempty"`
	Writers    []string   `json:"writers,omitempty" yaml:"writers,omitempty"`
	Actors     []string   `json:"actors,omitempty" yaml:"actors,omitempty"`
	Plot       string     `json:"plot,omitempty" yaml:"plot,omitempty"`
	Language   string     `json:"language,omitempty" yaml:"language,omitempty"`
	Country    string     `json:"country,omitempty" yaml:"country,omitempty"`
	Awards     string     `json:"awards,omitempty" yaml:"awards,omitempty"`
	PosterURL  string     `json:"posterUrl,omitempty" yaml:"posterUrl,omitempty"`
	Ratings    []Rating   `json:"ratings,omitempty" yaml:"ratings,omitempty"`
	Metascore  *int       `json:"metascore,omitempty" yaml:"metascore,omitempty"`
	IMDbRating *float64   `json:"imdbRating,omitempty" yaml:"imdbRating,omitempty"`
	IMDbVotes  *int       `json:"imdbVotes,omitempty" yaml:"imdbVotes,omitempty"`
	Type       Type       `json:"type" yaml:"type"`
	DVD        *time.Time `json:"dvd,omitempty" yaml:"dvd,omitempty"`
	BoxOffice  *float64   `json:"boxOffice,omitempty" yaml:"boxOffice,omitempty"`
	Production string     `json:"production,omitempty" yaml:"production,omitempty"`
	Website    string     `json:"website,omitempty" yaml:"website,omitempty"`
	ResponseOK bool       `json:"response" yaml:"response"`
}

type storedEntry struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Year      string `json:"year,omitempty" yaml:"year,omitempty"`
	Type      Type   `json:"type" yaml:"type"`
	PosterURL string `json:"posterUrl,omitempty" yaml:"posterUrl,omitempty"`
}

func (m Movie) stored() storedMovie {
	return storedMovie{
		ID:         m.ID,
		Title:      m.Title,
		Year:       m.Year,
		Rated:      m.Rated,
		Released:   m.Released,
		Runtime:    m.Runtime,
		Genres:     m.Genres,
		Directors:  m.Directors,
		Writers:    m.Writers,
		Actors:     m.Actors,
		Plot:       m.Plot,
		Language:   m.Language,
		Country:    m.Country,
		Awards:     m.Awards,
		PosterURL:  urlString(m.PosterURL),
		Ratings:    m.Ratings,
		Metascore:  m.Metascore,
		IMDbRating: m.IMDbRating,
		IMDbVotes:  m.IMDbVotes,
		Type:       m.Type,
		DVD:        m.DVD,
		BoxOffice:  m.BoxOffice,
		Production: m.Production,
		Website:    urlString(m.Website),
		ResponseOK: m.ResponseOK,
	}
}

// MarshalJSON encodes the movie in its persisted layout.
func (m Movie) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.stored())
}

// MarshalYAML implements yaml.Marshaler with the same layout as MarshalJSON.
func (m Movie) MarshalYAML() (any, error) {
	return m.stored(), nil
}

// UnmarshalJSON decodes the persisted layout. Malformed URLs are dropped.
func (m *Movie) UnmarshalJSON(data []byte) error {
	var s storedMovie
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = Movie{
		ID:         s.ID,
		Title:      s.Title,
		Year:       s.Year,
		Rated:      s.Rated,
		Released:   utcTime(s.Released),
		Runtime:    s.Runtime,
		Genres:     s.Genres,
		Directors:  s.Directors,
		Writers:    s.Writers,
		Actors:     s.Actors,
		Plot:       s.Plot,
		Language:   s.Language,
		Country:    s.Country,
		Awards:     s.Awards,
		PosterURL:  optional(s.PosterURL, parseURL),
		Ratings:    s.Ratings,
		Metascore:  s.Metascore,
		IMDbRating: s.IMDbRating,
		IMDbVotes:  s.IMDbVotes,
		Type:       ParseType(string(s.Type)),
		DVD:        utcTime(s.DVD),
		BoxOffice:  s.BoxOffice,
		Production: s.Production,
		Website:    optional(s.Website, parseURL),
		ResponseOK: s.ResponseOK,
	}
	return nil
}

func (e SearchEntry) stored() storedEntry {
	return storedEntry{
		ID:        e.ID,
		Title:     e.Title,
		Year:      e.Year,
		Type:      e.Type,
		PosterURL: urlString(e.PosterURL),
	}
}

func (e SearchEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.stored())
}

func (e SearchEntry) MarshalYAML() (any, error) {
	return e.stored(), nil
}

func (e *SearchEntry) UnmarshalJSON(data []byte) error {
	var s storedEntry
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*e = SearchEntry{
		ID:        s.ID,
		Title:     s.Title,
		Year:      s.Year,
		Type:      ParseType(string(s.Type)),
		PosterURL: optional(s.PosterURL, parseURL),
	}
	return nil
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
