package cmd

import (
	"io"
	"log/slog"

	"github.com/lepinkainen/moviefav/internal/config"
	"github.com/lepinkainen/moviefav/internal/favorites"
	"github.com/lepinkainen/moviefav/internal/kvstore"
	"github.com/lepinkainen/moviefav/internal/movie"
	"github.com/lepinkainen/moviefav/internal/omdb"
	"github.com/lepinkainen/moviefav/internal/ratelimit"
	"github.com/lepinkainen/moviefav/internal/session"
	"github.com/lepinkainen/moviefav/internal/tui"
)

var selectEntry = tui.Select

// app holds the resolved configuration and builds the long-lived
// collaborators commands share.
type app struct {
	cfg    config.Config
	out    io.Writer
	client *omdb.Client
}

func newApp(cfg config.Config, out io.Writer) *app {
	return &app{cfg: cfg, out: out}
}

// omdbClient returns the single client for this run.
func (a *app) omdbClient() (*omdb.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	if err := a.cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	a.client = omdb.NewClient(a.cfg.APIKey,
		omdb.WithBaseURL(a.cfg.BaseURL),
		omdb.WithTimeout(a.cfg.Timeout),
		omdb.WithRetryAttempts(a.cfg.RetryAttempts),
		omdb.WithRateLimiter(ratelimit.New("omdb", a.cfg.RatePerSecond)),
	)
	return a.client, nil
}

func (a *app) newSession() (*session.Session, error) {
	client, err := a.omdbClient()
	if err != nil {
		return nil, err
	}
	return session.New(client, session.WithObserver(func(st session.State) {
		slog.Debug("Session state", "loading", st.Loading, "error", st.ErrorMessage())
	})), nil
}

// openFavorites opens the configured backend. The returned func closes it.
func (a *app) openFavorites() (*favorites.Store, func(), error) {
	backend, err := kvstore.Open(a.cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	store := favorites.New(backend,
		favorites.WithKey(a.cfg.FavoritesKey),
		favorites.WithOnChange(func(movies []movie.Movie) {
			slog.Debug("Favorites changed", "count", len(movies))
		}),
	)
	closeFn := func() {
		if err := backend.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}
	return store, closeFn, nil
}
