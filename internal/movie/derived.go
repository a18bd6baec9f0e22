package movie

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// ratingScales maps the recognised rating sources to the suffix stripped
// before parsing. Values are averaged as-is, without rescaling.
var ratingScales = map[string]string{
	"Internet Movie Database": "/10",
	"Rotten Tomatoes":         "%",
	"Metacritic":              "/100",
}

// AverageRating returns the arithmetic mean of the recognised ratings.
// The second return value is false when no rating could be used.
func (m Movie) AverageRating() (float64, bool) {
	var sum float64
	var count int
	for _, r := range m.Ratings {
		suffix, ok := ratingScales[r.Source]
		if !ok {
			continue
		}
		v, ok := parseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(r.Value), suffix)))
		if !ok {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// DisplayRuntime formats the runtime as "2h 16m" or "45m".
func (m Movie) DisplayRuntime() string {
	if m.Runtime == nil {
		return "Unknown"
	}
	hours, minutes := *m.Runtime/60, *m.Runtime%60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// DisplayBoxOffice formats the gross as whole dollars with separators.
func (m Movie) DisplayBoxOffice() string {
	if m.BoxOffice == nil {
		return NotAvailable
	}
	return "$" + humanize.Comma(int64(math.Round(*m.BoxOffice)))
}

func (m Movie) PrimaryGenre() string {
	if len(m.Genres) == 0 {
		return "Unknown"
	}
	return m.Genres[0]
}

// IsReleased reports whether OMDb knows a release date.
func (m Movie) IsReleased() bool {
	return m.Released != nil
}

func (m Movie) HasPoster() bool {
	return m.PosterURL != nil
}
