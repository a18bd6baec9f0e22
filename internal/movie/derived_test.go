package movie

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []Rating
		want    float64
		wantOK  bool
	}{
		{
			name: "three sources averaged without rescaling",
			ratings: []Rating{
				{Source: "Internet Movie Database", Value: "7.6/10"},
				{Source: "Rotten Tomatoes", Value: "85%"},
				{Source: "Metacritic", Value: "67/100"},
			},
			want:   53.2,
			wantOK: true,
		},
		{
			name: "imdb and rotten tomatoes",
			ratings: []Rating{
				{Source: "Internet Movie Database", Value: "7.6/10"},
				{Source: "Rotten Tomatoes", Value: "85%"},
			},
			want:   46.3,
			wantOK: true,
		},
		{
			name: "unknown source ignored",
			ratings: []Rating{
				{Source: "Letterboxd", Value: "4.1/5"},
				{Source: "Metacritic", Value: "67/100"},
			},
			want:   67,
			wantOK: true,
		},
		{
			name: "unparsable value excluded",
			ratings: []Rating{
				{Source: "Rotten Tomatoes", Value: "fresh"},
				{Source: "Internet Movie Database", Value: "8.0/10"},
			},
			want:   8,
			wantOK: true,
		},
		{
			name: "non-finite values excluded",
			ratings: []Rating{
				{Source: "Internet Movie Database", Value: "Inf/10"},
				{Source: "Rotten Tomatoes", Value: "NaN%"},
				{Source: "Metacritic", Value: "67/100"},
			},
			want:   67,
			wantOK: true,
		},
		{
			name:    "only non-finite values",
			ratings: []Rating{{Source: "Internet Movie Database", Value: "-Inf/10"}},
		},
		{
			name:    "only unknown sources",
			ratings: []Rating{{Source: "Letterboxd", Value: "4.1/5"}},
		},
		{
			name: "no ratings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Movie{Ratings: tt.ratings}.AverageRating()
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDisplayRuntime(t *testing.T) {
	tests := []struct {
		runtime *int
		want    string
	}{
		{runtime: ptr(136), want: "2h 16m"},
		{runtime: ptr(120), want: "2h 0m"},
		{runtime: ptr(45), want: "45m"},
		{runtime: ptr(0), want: "0m"},
		{runtime: nil, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Movie{Runtime: tt.runtime}.DisplayRuntime())
		})
	}
}

func TestDisplayBoxOffice(t *testing.T) {
	assert.Equal(t, "$389,813,101", Movie{BoxOffice: ptr(389813101.0)}.DisplayBoxOffice())
	assert.Equal(t, "$950", Movie{BoxOffice: ptr(949.6)}.DisplayBoxOffice())
	assert.Equal(t, "N/A", Movie{}.DisplayBoxOffice())
}

func TestDerivedFlags(t *testing.T) {
	released := time.Date(2017, time.May, 5, 0, 0, 0, 0, time.UTC)
	poster, _ := url.Parse("https://example.com/poster.jpg")

	full := Movie{Released: &released, PosterURL: poster, Genres: []string{"Action", "Comedy"}}
	assert.True(t, full.IsReleased())
	assert.True(t, full.HasPoster())
	assert.Equal(t, "Action", full.PrimaryGenre())

	empty := Movie{}
	assert.False(t, empty.IsReleased())
	assert.False(t, empty.HasPoster())
	assert.Equal(t, "Unknown", empty.PrimaryGenre())
}
