package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lepinkainen/moviefav/internal/omdbmock"
)

// MockServerCmd runs a local OMDb stand-in
type MockServerCmd struct {
	Port         int    `help:"Port to listen on" default:"8080"`
	Fixtures     string `help:"JSON fixtures file (default: built-in records)"`
	RequireKey   bool   `help:"Only accept the configured API key"`
	RequestLimit int    `help:"Answer with the daily-limit error after this many requests (0 = unlimited)"`
}

func (m *MockServerCmd) Run(a *app) error {
	fixtures := omdbmock.DefaultFixtures()
	if m.Fixtures != "" {
		loaded, err := omdbmock.LoadFixtures(m.Fixtures)
		if err != nil {
			return err
		}
		fixtures = loaded
	}

	var opts []omdbmock.Option
	if m.RequireKey {
		if err := a.cfg.RequireAPIKey(); err != nil {
			return err
		}
		opts = append(opts, omdbmock.WithAPIKey(a.cfg.APIKey))
	}
	if m.RequestLimit > 0 {
		opts = append(opts, omdbmock.WithRequestLimit(m.RequestLimit))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", m.Port)
	slog.Info("Starting OMDb mock server", "addr", addr, "records", len(fixtures.Records))
	return omdbmock.New(fixtures, opts...).Start(ctx, addr)
}
