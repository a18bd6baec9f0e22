package omdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/lepinkainen/moviefav/internal/errors"
	"github.com/lepinkainen/moviefav/internal/movie"
)

// FetchMovie retrieves and normalizes a single title by IMDb ID.
func (c *Client) FetchMovie(ctx context.Context, imdbID string) (movie.Movie, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return movie.Movie{}, errors.NewRequestError("IMDb ID is required")
	}

	endpoint, err := c.endpoint(url.Values{"i": {imdbID}})
	if err != nil {
		return movie.Movie{}, err
	}

	slog.Debug("Fetching OMDb record", "imdb_id", imdbID)

	var raw movie.RawRecord
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return movie.Movie{}, fmt.Errorf("fetch %s: %w", imdbID, err)
	}

	m, err := movie.Normalize(raw)
	if err != nil {
		if errors.IsNotFoundError(err) {
			slog.Debug("Movie not found in OMDb", "imdb_id", imdbID, "error", raw.Error)
		}
		return movie.Movie{}, fmt.Errorf("fetch %s: %w", imdbID, err)
	}
	return m, nil
}

// Search runs a title search. The query is trimmed and must not be empty.
func (c *Client) Search(ctx context.Context, query string) ([]movie.SearchEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewRequestError("search query is empty")
	}

	endpoint, err := c.endpoint(url.Values{"s": {query}})
	if err != nil {
		return nil, err
	}

	slog.Debug("Searching OMDb", "query", query)

	var raw movie.SearchResponse
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	entries, err := movie.NormalizeSearch(raw)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	slog.Debug("OMDb search finished", "query", query, "results", len(entries), "total", raw.TotalResults)
	return entries, nil
}
