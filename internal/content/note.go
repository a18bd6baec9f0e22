package content

import (
	"strconv"
	"strings"

	"github.com/lepinkainen/moviefav/internal/fileutil"
	"github.com/lepinkainen/moviefav/internal/movie"
)

// BuildMovieNote renders a favorite as a standalone markdown note with
// YAML frontmatter.
func BuildMovieNote(m movie.Movie) string {
	mb := fileutil.NewMarkdownBuilder().
		AddTitle(m.Title).
		AddType(string(m.Type)).
		AddField("year", m.Year).
		AddField("imdb_id", m.ID).
		AddField("rated", m.Rated)

	if m.Released != nil {
		mb.AddField("released", m.Released.Format("2006-01-02"))
	}
	if m.Runtime != nil {
		mb.AddField("runtime_mins", *m.Runtime).AddDuration(*m.Runtime)
	}
	if m.IMDbRating != nil {
		mb.AddField("imdb_rating", *m.IMDbRating)
	}
	if m.Metascore != nil {
		mb.AddField("metascore", *m.Metascore)
	}

	mb.AddStringArray("directors", m.Directors).
		AddStringArray("genres", m.Genres).
		AddTags(noteTags(m)...)

	if m.PosterURL != nil {
		mb.AddImage(m.PosterURL.String())
	}
	mb.AddParagraph(BuildMovieContent(&m, DefaultSections)).
		AddExternalLink("View on IMDb", IMDbURL(m.ID))

	return mb.Build()
}

// NoteFilename returns the file name used for a movie's exported note.
func NoteFilename(m movie.Movie, directory string) string {
	return fileutil.GetMarkdownFilePath(DisplayTitle(m), directory)
}

func noteTags(m movie.Movie) []string {
	tags := []string{"moviefav", string(m.Type)}
	for _, g := range m.Genres {
		tags = append(tags, "genre/"+tagSlug(g))
	}
	if tag := decadeTag(m.Year); tag != "" {
		tags = append(tags, tag)
	}
	return tags
}

func tagSlug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// decadeTag uses the first year of ranges such as "2015–2019".
func decadeTag(year string) string {
	if len(year) < 4 {
		return ""
	}
	y, err := strconv.Atoi(year[:4])
	if err != nil {
		return ""
	}
	if y < 1950 {
		return "year/pre-1950s"
	}
	return "year/" + strconv.Itoa(y/10*10) + "s"
}
