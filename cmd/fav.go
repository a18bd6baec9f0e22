package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/moviefav/internal/content"
	"github.com/lepinkainen/moviefav/internal/datastore"
	"github.com/lepinkainen/moviefav/internal/fileutil"
	"github.com/lepinkainen/moviefav/internal/movie"
)

// FavCmd groups the favorites subcommands
type FavCmd struct {
	Add    FavAddCmd    `cmd:"" help:"Fetch a title and add it to favorites"`
	Remove FavRemoveCmd `cmd:"" help:"Remove a title from favorites"`
	Toggle FavToggleCmd `cmd:"" help:"Add a title if absent, remove it if present"`
	List   FavListCmd   `cmd:"" help:"List favorites"`
	Clear  FavClearCmd  `cmd:"" help:"Remove all favorites"`
	Export FavExportCmd `cmd:"" help:"Write favorites to a file"`
}

type FavAddCmd struct {
	ID string `arg:"" help:"IMDb identifier"`
}

func (f *FavAddCmd) Run(a *app) error {
	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	id := strings.TrimSpace(f.ID)
	if existing, ok := store.Get(id); ok {
		return a.printf("%s is already a favorite\n", content.DisplayTitle(existing))
	}

	sess, err := a.newSession()
	if err != nil {
		return err
	}
	m, err := sess.LoadMovie(context.Background(), id)
	if err != nil {
		return err
	}

	store.Add(m)
	return a.printf("Added %s\n", content.DisplayTitle(m))
}

type FavRemoveCmd struct {
	ID string `arg:"" help:"IMDb identifier"`
}

func (f *FavRemoveCmd) Run(a *app) error {
	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	id := strings.TrimSpace(f.ID)
	existing, ok := store.Get(id)
	if !ok {
		return a.printf("%s is not a favorite\n", id)
	}

	store.Remove(id)
	return a.printf("Removed %s\n", content.DisplayTitle(existing))
}

type FavToggleCmd struct {
	ID string `arg:"" help:"IMDb identifier"`
}

func (f *FavToggleCmd) Run(a *app) error {
	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	id := strings.TrimSpace(f.ID)
	// A stored favorite can be toggled off without a network round trip.
	m, ok := store.Get(id)
	if !ok {
		sess, err := a.newSession()
		if err != nil {
			return err
		}
		if m, err = sess.LoadMovie(context.Background(), id); err != nil {
			return err
		}
	}

	if store.Toggle(m) {
		return a.printf("Added %s\n", content.DisplayTitle(m))
	}
	return a.printf("Removed %s\n", content.DisplayTitle(m))
}

type FavListCmd struct {
	Format string `short:"F" help:"Output format: text, json, yaml or markdown" default:"text"`
}

func (f *FavListCmd) Run(a *app) error {
	format, err := content.ParseFormat(f.Format)
	if err != nil {
		return err
	}

	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	return content.WriteMovies(a.out, format, store.All())
}

type FavClearCmd struct{}

func (f *FavClearCmd) Run(a *app) error {
	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	count := store.Len()
	store.Clear()
	return a.printf("Removed %d favorites\n", count)
}

type FavExportCmd struct {
	Path      string `arg:"" help:"Output file, or directory for markdown notes"`
	Format    string `short:"F" help:"Export format: json, yaml, markdown or sqlite" default:"json"`
	Overwrite bool   `help:"Overwrite existing files"`
}

func (f *FavExportCmd) Run(a *app) error {
	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	movies := store.All()
	if strings.EqualFold(strings.TrimSpace(f.Format), "sqlite") {
		return f.exportSQLite(a, movies)
	}

	format, err := content.ParseFormat(f.Format)
	if err != nil {
		return err
	}

	written := 0
	switch format {
	case content.FormatJSON, content.FormatYAML:
		write := fileutil.WriteJSONFile
		if format == content.FormatYAML {
			write = fileutil.WriteYAMLFile
		}
		ok, err := write(movies, f.Path, f.Overwrite)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s already exists (use --overwrite)", f.Path)
		}
		written = len(movies)
	case content.FormatMarkdown:
		for _, m := range movies {
			path := content.NoteFilename(m, f.Path)
			if !f.Overwrite && fileutil.FileExists(path) {
				slog.Info("Note already exists, skipping", "path", path)
				continue
			}
			if err := fileutil.WriteMarkdownFile(path, content.BuildMovieNote(m), f.Overwrite); err != nil {
				return err
			}
			written++
		}
	default:
		return fmt.Errorf("format %q cannot be exported", format)
	}

	return a.printf("Exported %d favorites to %s\n", written, f.Path)
}

// exportSQLite replaces the favorites table of the database at f.Path.
func (f *FavExportCmd) exportSQLite(a *app, movies []movie.Movie) error {
	if fileutil.FileExists(f.Path) && !f.Overwrite {
		return fmt.Errorf("%s already exists (use --overwrite)", f.Path)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := datastore.ExportMovies(datastore.NewSQLiteStore(f.Path), movies); err != nil {
		return err
	}
	return a.printf("Exported %d favorites to %s\n", len(movies), f.Path)
}

func (a *app) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(a.out, format, args...)
	return err
}
