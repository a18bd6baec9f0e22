// Package content renders movies as markdown, terminal cards and
// machine-readable documents.
package content

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lepinkainen/moviefav/internal/movie"
)

// Section names accepted by BuildMovieContent.
const (
	SectionInfo    = "info"
	SectionRatings = "ratings"
	SectionPlot    = "plot"
	SectionAwards  = "awards"
)

// DefaultSections is the section order used for exported notes.
var DefaultSections = []string{SectionInfo, SectionRatings, SectionPlot, SectionAwards}

// BuildMovieContent generates markdown sections for a movie in the order
// given by DefaultSections. Sections with no data are left out.
func BuildMovieContent(m *movie.Movie, sections []string) string {
	if m == nil {
		return ""
	}

	sectionMap := make(map[string]bool)
	for _, s := range sections {
		sectionMap[s] = true
	}

	var builder strings.Builder
	for _, name := range DefaultSections {
		if !sectionMap[name] {
			continue
		}
		var section string
		switch name {
		case SectionInfo:
			section = buildInfoSection(m)
		case SectionRatings:
			section = buildRatingsSection(m)
		case SectionPlot:
			section = buildTextSection("Plot", m.Plot)
		case SectionAwards:
			section = buildTextSection("Awards", m.Awards)
		}
		if section != "" {
			builder.WriteString(section)
			builder.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(builder.String())
}

func buildInfoSection(m *movie.Movie) string {
	var builder strings.Builder

	builder.WriteString("## Details\n\n")
	builder.WriteString("| | |\n")
	builder.WriteString("|---|---|\n")
	fmt.Fprintf(&builder, "| **Title** | %s |\n", DisplayTitle(*m))
	fmt.Fprintf(&builder, "| **Type** | %s |\n", m.Type.DisplayName())

	if m.Rated != "" {
		fmt.Fprintf(&builder, "| **Rated** | %s |\n", m.Rated)
	}
	if m.Released != nil {
		fmt.Fprintf(&builder, "| **Released** | %s |\n", m.Released.Format(movie.DateLayout))
	}
	if m.Runtime != nil {
		fmt.Fprintf(&builder, "| **Runtime** | %s |\n", m.DisplayRuntime())
	}
	writeListRow(&builder, "Director", "Directors", m.Directors)
	writeListRow(&builder, "Writer", "Writers", m.Writers)
	writeListRow(&builder, "Actor", "Actors", m.Actors)
	writeListRow(&builder, "Genre", "Genres", m.Genres)
	if m.Language != "" {
		fmt.Fprintf(&builder, "| **Language** | %s |\n", m.Language)
	}
	if m.Country != "" {
		fmt.Fprintf(&builder, "| **Country** | %s |\n", m.Country)
	}
	if m.BoxOffice != nil {
		fmt.Fprintf(&builder, "| **Box Office** | %s |\n", m.DisplayBoxOffice())
	}
	if m.Production != "" {
		fmt.Fprintf(&builder, "| **Production** | %s |\n", m.Production)
	}
	if m.Website != nil {
		fmt.Fprintf(&builder, "| **Website** | %s |\n", m.Website.String())
	}
	fmt.Fprintf(&builder, "| **IMDb** | [%s](%s) |\n", m.ID, IMDbURL(m.ID))

	return strings.TrimRight(builder.String(), "\n")
}

func writeListRow(builder *strings.Builder, singular, plural string, values []string) {
	if len(values) == 0 {
		return
	}
	label := singular
	if len(values) > 1 {
		label = plural
	}
	fmt.Fprintf(builder, "| **%s** | %s |\n", label, strings.Join(values, ", "))
}

// buildRatingsSection lists every rating source verbatim plus the IMDb
// vote data and the unweighted average.
func buildRatingsSection(m *movie.Movie) string {
	var rows []string
	for _, r := range m.Ratings {
		rows = append(rows, fmt.Sprintf("| %s | %s |", r.Source, r.Value))
	}
	if m.IMDbRating != nil {
		votes := ""
		if m.IMDbVotes != nil {
			votes = fmt.Sprintf(" (%s votes)", humanize.Comma(int64(*m.IMDbVotes)))
		}
		rows = append(rows, fmt.Sprintf("| IMDb users | ⭐ %.1f/10%s |", *m.IMDbRating, votes))
	}
	if m.Metascore != nil {
		rows = append(rows, fmt.Sprintf("| Metascore | 📊 %d/100 |", *m.Metascore))
	}
	if avg, ok := m.AverageRating(); ok {
		rows = append(rows, fmt.Sprintf("| **Average** | %.1f |", avg))
	}

	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Ratings\n\n")
	sb.WriteString("| Source | Score |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(strings.Join(rows, "\n"))
	return sb.String()
}

func buildTextSection(heading, text string) string {
	if text == "" {
		return ""
	}
	return "## " + heading + "\n\n" + text
}

// DisplayTitle formats a movie as "Title (Year)".
func DisplayTitle(m movie.Movie) string {
	if m.Year == "" {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, m.Year)
}

// IMDbURL returns the IMDb title page for an identifier.
func IMDbURL(id string) string {
	return fmt.Sprintf("https://www.imdb.com/title/%s/", id)
}
