package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/lepinkainen/moviefav/internal/movie"
)

const cardWidth = 72

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(cardWidth)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254"))

	favoriteBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("247"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110"))

	plotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")).
			MarginTop(1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("178"))
)

// RenderCard renders a movie detail card for the terminal.
func RenderCard(m movie.Movie, favorite bool) string {
	title := cardTitleStyle.Render(DisplayTitle(m))
	if favorite {
		title += " " + favoriteBadgeStyle.Render("★ Favorite")
	}

	lines := []string{title, metaStyle.Render(metaLine(m))}
	for _, row := range detailRows(m) {
		lines = append(lines, labelStyle.Render(row[0]+":")+" "+row[1])
	}
	if m.Plot != "" {
		lines = append(lines, plotStyle.Render(m.Plot))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func metaLine(m movie.Movie) string {
	parts := []string{m.Type.DisplayName()}
	if m.Rated != "" {
		parts = append(parts, m.Rated)
	}
	parts = append(parts, m.DisplayRuntime(), m.PrimaryGenre())
	return strings.Join(parts, " | ")
}

func detailRows(m movie.Movie) [][2]string {
	var rows [][2]string
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, [2]string{label, value})
		}
	}

	if m.Released != nil {
		add("Released", m.Released.Format(movie.DateLayout))
	}
	add("Director", strings.Join(m.Directors, ", "))
	add("Writers", strings.Join(m.Writers, ", "))
	add("Cast", strings.Join(m.Actors, ", "))
	add("Language", m.Language)
	add("Country", m.Country)
	if m.IMDbRating != nil {
		rating := fmt.Sprintf("%.1f/10", *m.IMDbRating)
		if m.IMDbVotes != nil {
			rating += fmt.Sprintf(" (%s votes)", humanize.Comma(int64(*m.IMDbVotes)))
		}
		add("IMDb", rating)
	}
	if m.Metascore != nil {
		add("Metascore", fmt.Sprintf("%d/100", *m.Metascore))
	}
	if avg, ok := m.AverageRating(); ok {
		add("Average", fmt.Sprintf("%.1f", avg))
	}
	if m.BoxOffice != nil {
		add("Box office", m.DisplayBoxOffice())
	}
	add("Awards", m.Awards)
	add("IMDb ID", m.ID)
	return rows
}

// RenderSearchResults renders one line per search entry. isFavorite may be nil.
func RenderSearchResults(entries []movie.SearchEntry, isFavorite func(id string) bool) string {
	if len(entries) == 0 {
		return "No results."
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		marker := " "
		if isFavorite != nil && isFavorite(e.ID) {
			marker = favoriteBadgeStyle.Render("★")
		}
		line := fmt.Sprintf("%s %s  %s (%s) [%s]", marker, idStyle.Render(e.ID), e.Title, e.Year, e.Type.DisplayName())
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderFavorites renders the favorites list in insertion order.
func RenderFavorites(movies []movie.Movie) string {
	if len(movies) == 0 {
		return "No favorites yet."
	}

	lines := make([]string, 0, len(movies))
	for i, m := range movies {
		lines = append(lines, fmt.Sprintf("%2d. %s  %s  %s", i+1, idStyle.Render(m.ID), DisplayTitle(m), metaStyle.Render(metaLine(m))))
	}
	return strings.Join(lines, "\n")
}
