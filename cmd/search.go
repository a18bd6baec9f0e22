package cmd

import (
	"context"
	"fmt"

	"github.com/lepinkainen/moviefav/internal/content"
	"github.com/lepinkainen/moviefav/internal/tui"
)

// SearchCmd searches OMDb by title
type SearchCmd struct {
	Query       string `arg:"" help:"Title to search for"`
	Interactive bool   `short:"i" help:"Pick a result interactively and show its details"`
	Add         bool   `help:"Add the picked result to favorites (with --interactive)"`
	Format      string `short:"F" help:"Output format: text, json, yaml or markdown" default:"text"`
}

func (s *SearchCmd) Run(a *app) error {
	format, err := content.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	sess, err := a.newSession()
	if err != nil {
		return err
	}

	ctx := context.Background()
	entries, err := sess.Search(ctx, s.Query)
	if err != nil {
		return err
	}

	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	if !s.Interactive {
		return content.WriteSearch(a.out, format, entries, store.Contains)
	}

	result, err := selectEntry(s.Query, entries, store.Contains)
	if err != nil {
		return fmt.Errorf("selection failed: %w", err)
	}
	if result.Action != tui.ActionSelected || result.Selection == nil {
		_, err := fmt.Fprintln(a.out, "No selection.")
		return err
	}

	m, err := sess.LoadMovie(ctx, result.Selection.ID)
	if err != nil {
		return err
	}
	if s.Add {
		store.Add(m)
	}
	return content.WriteMovie(a.out, format, m, store.Contains(m.ID))
}
