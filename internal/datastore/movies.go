package datastore

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lepinkainen/moviefav/internal/movie"
)

// FavoritesTable is the table ExportMovies writes.
const FavoritesTable = "favorites"

const favoritesSchema = `CREATE TABLE IF NOT EXISTS favorites (
	position INTEGER PRIMARY KEY,
	imdb_id TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	year TEXT,
	type TEXT,
	rated TEXT,
	released TEXT,
	runtime_minutes INTEGER,
	genres TEXT,
	directors TEXT,
	writers TEXT,
	actors TEXT,
	plot TEXT,
	language TEXT,
	country TEXT,
	awards TEXT,
	poster_url TEXT,
	metascore INTEGER,
	imdb_rating REAL,
	imdb_votes INTEGER,
	average_rating REAL,
	box_office REAL,
	production TEXT,
	website TEXT
)`

// movieRow is the flat shape of one favorites row. Field names become
// snake_case column names.
type movieRow struct {
	Position       int
	IMDbID         string
	Title          string
	Year           string
	Type           string
	Rated          string
	Released       *time.Time
	RuntimeMinutes *int
	Genres         []string
	Directors      []string
	Writers        []string
	Actors         []string
	Plot           string
	Language       string
	Country        string
	Awards         string
	PosterURL      string
	Metascore      *int
	IMDbRating     *float64
	IMDbVotes      *int
	AverageRating  *float64
	BoxOffice      *float64
	Production     string
	Website        string
}

func newMovieRow(position int, m movie.Movie) movieRow {
	row := movieRow{
		Position:       position,
		IMDbID:         m.ID,
		Title:          m.Title,
		Year:           m.Year,
		Type:           string(m.Type),
		Rated:          m.Rated,
		Released:       m.Released,
		RuntimeMinutes: m.Runtime,
		Genres:         m.Genres,
		Directors:      m.Directors,
		Writers:        m.Writers,
		Actors:         m.Actors,
		Plot:           m.Plot,
		Language:       m.Language,
		Country:        m.Country,
		Awards:         m.Awards,
		Metascore:      m.Metascore,
		IMDbRating:     m.IMDbRating,
		IMDbVotes:      m.IMDbVotes,
		BoxOffice:      m.BoxOffice,
		Production:     m.Production,
	}
	if m.PosterURL != nil {
		row.PosterURL = m.PosterURL.String()
	}
	if m.Website != nil {
		row.Website = m.Website.String()
	}
	if avg, ok := m.AverageRating(); ok {
		row.AverageRating = &avg
	}
	return row
}

// MovieRecord flattens a movie into a column map for the favorites table.
func MovieRecord(position int, m movie.Movie) map[string]any {
	return StructToMap(newMovieRow(position, m), StructToMapOptions{
		KeyOverrides:     map[string]string{"IMDbID": "imdb_id"},
		JoinStringSlices: true,
	})
}

// ExportMovies connects store and replaces its favorites table with movies,
// keeping list order in the position column.
func ExportMovies(store Store, movies []movie.Movie) error {
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close export database", "error", err)
		}
	}()

	if err := store.CreateTable(favoritesSchema); err != nil {
		return err
	}

	records := make([]map[string]any, 0, len(movies))
	for i, m := range movies {
		records = append(records, MovieRecord(i+1, m))
	}
	if err := store.ReplaceAll(FavoritesTable, records); err != nil {
		return fmt.Errorf("export favorites: %w", err)
	}
	return nil
}
