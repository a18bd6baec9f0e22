package movie

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/lepinkainen/moviefav/internal/errors"
)

// DateLayout is the format OMDb uses for Released and DVD ("05 May 2017").
const DateLayout = "02 Jan 2006"

// Normalize converts a raw OMDb record into a Movie.
//
// Only the envelope can fail: a Response flag other than "True" yields a
// NotFoundError and a missing imdbID yields a MissingIdentifierError. Every
// other field is parsed independently and dropped to its absent value when
// it is "N/A" or malformed.
func Normalize(raw RawRecord) (Movie, error) {
	if !responseOK(raw.Response) {
		return Movie{}, errors.NewNotFoundError(raw.Error)
	}
	if isAbsent(raw.ImdbID) {
		return Movie{}, errors.NewMissingIdentifierError()
	}

	return Movie{
		ID:         strings.TrimSpace(raw.ImdbID),
		Title:      raw.Title,
		Year:       raw.Year,
		Rated:      raw.Rated,
		Released:   optional(raw.Released, parseDate),
		Runtime:    optional(raw.Runtime, parseRuntime),
		Genres:     splitList(raw.Genre),
		Directors:  splitList(raw.Director),
		Writers:    splitList(raw.Writer),
		Actors:     splitList(raw.Actors),
		Plot:       raw.Plot,
		Language:   raw.Language,
		Country:    raw.Country,
		Awards:     raw.Awards,
		PosterURL:  optional(raw.Poster, parseURL),
		Ratings:    copyRatings(raw.Ratings),
		Metascore:  optional(raw.Metascore, parseCount),
		IMDbRating: optional(raw.ImdbRating, parseFloat),
		IMDbVotes:  optional(raw.ImdbVotes, parseCount),
		Type:       ParseType(raw.Type),
		DVD:        optional(raw.DVD, parseDate),
		BoxOffice:  optional(raw.BoxOffice, parseMoney),
		Production: raw.Production,
		Website:    optional(raw.Website, parseURL),
		ResponseOK: true,
	}, nil
}

// NormalizeSearch converts a search response into entries, applying the same
// envelope rule as Normalize. Rows without an imdbID are skipped.
func NormalizeSearch(raw SearchResponse) ([]SearchEntry, error) {
	if !responseOK(raw.Response) {
		return nil, errors.NewNotFoundError(raw.Error)
	}

	entries := make([]SearchEntry, 0, len(raw.Search))
	for _, item := range raw.Search {
		if isAbsent(item.ImdbID) {
			continue
		}
		entries = append(entries, SearchEntry{
			ID:        strings.TrimSpace(item.ImdbID),
			Title:     item.Title,
			Year:      item.Year,
			Type:      ParseType(item.Type),
			PosterURL: optional(item.Poster, parseURL),
		})
	}
	return entries, nil
}

// optional runs parse on raw unless raw is absent, returning nil when either
// the value is absent or the parser rejects it.
func optional[T any](raw string, parse func(string) (T, bool)) *T {
	if isAbsent(raw) {
		return nil
	}
	v, ok := parse(strings.TrimSpace(raw))
	if !ok {
		return nil
	}
	return &v
}

func isAbsent(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == NotAvailable
}

func responseOK(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "True")
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	return t, err == nil
}

// parseRuntime handles "136 min".
func parseRuntime(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "min")))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseCount handles integers with thousands separators ("802,014").
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	return n, err == nil
}

// parseFloat rejects NaN and infinities, which ParseFloat accepts as
// words and which JSON cannot encode.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseMoney handles "$389,813,101" and other leading currency symbols.
func parseMoney(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	return parseFloat(strings.ReplaceAll(s, ",", ""))
}

// parseURL accepts only absolute http(s) URLs.
func parseURL(s string) (url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return url.URL{}, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return url.URL{}, false
	}
	return *u, true
}

func splitList(s string) []string {
	if isAbsent(s) {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ", ") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func copyRatings(in []RawRating) []Rating {
	if len(in) == 0 {
		return nil
	}
	out := make([]Rating, len(in))
	for i, r := range in {
		out[i] = Rating{Source: r.Source, Value: r.Value}
	}
	return out
}
