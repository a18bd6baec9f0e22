package cmd

import (
	"context"

	"github.com/lepinkainen/moviefav/internal/content"
)

// ShowCmd prints the details of a single title
type ShowCmd struct {
	ID     string `arg:"" help:"IMDb identifier, e.g. tt3896198"`
	Format string `short:"F" help:"Output format: text, json, yaml or markdown" default:"text"`
}

func (s *ShowCmd) Run(a *app) error {
	format, err := content.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	sess, err := a.newSession()
	if err != nil {
		return err
	}
	m, err := sess.LoadMovie(context.Background(), s.ID)
	if err != nil {
		return err
	}

	store, closeStore, err := a.openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	return content.WriteMovie(a.out, format, m, store.Contains(m.ID))
}
