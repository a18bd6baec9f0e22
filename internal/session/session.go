// Package session tracks the loading, result and error state of movie
// lookups and searches issued on behalf of one user.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lepinkainen/moviefav/internal/movie"
)

// Fetcher is the subset of the OMDb client a session drives.
type Fetcher interface {
	FetchMovie(ctx context.Context, id string) (movie.Movie, error)
	Search(ctx context.Context, query string) ([]movie.SearchEntry, error)
}

// State is a snapshot of a session.
type State struct {
	Loading bool
	Movie   *movie.Movie
	Results []movie.SearchEntry
	Err     error
}

// ErrorMessage returns the last error text, or "" when the last request succeeded.
func (s State) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Option configures a Session.
type Option func(*Session)

// WithObserver registers fn to receive a snapshot after every state change.
// fn is called without the session lock held.
func WithObserver(fn func(State)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// Session owns the state of in-flight and completed requests. Requests may
// run on separate goroutines; the last one to finish wins.
type Session struct {
	fetcher  Fetcher
	observer func(State)

	mu       sync.Mutex
	inflight int
	movie    *movie.Movie
	results  []movie.SearchEntry
	err      error
}

// New creates a session around fetcher.
func New(fetcher Fetcher, opts ...Option) *Session {
	s := &Session{fetcher: fetcher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadMovie fetches one record by IMDb identifier and records the outcome.
func (s *Session) LoadMovie(ctx context.Context, id string) (movie.Movie, error) {
	s.begin()
	defer s.end()

	m, err := s.fetcher.FetchMovie(ctx, id)

	s.record(func() {
		if err != nil {
			s.err = err
			return
		}
		s.movie = &m
		s.err = nil
	})
	if err != nil {
		slog.Debug("Movie lookup failed", "imdb_id", id, "error", err)
		return movie.Movie{}, err
	}
	return m, nil
}

// Search runs a title search and records the results.
func (s *Session) Search(ctx context.Context, query string) ([]movie.SearchEntry, error) {
	s.begin()
	defer s.end()

	results, err := s.fetcher.Search(ctx, query)

	s.record(func() {
		if err != nil {
			s.err = err
			return
		}
		s.results = results
		s.err = nil
	})
	if err != nil {
		slog.Debug("Search failed", "query", query, "error", err)
		return nil, err
	}
	return results, nil
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// ErrorMessage is shorthand for State().ErrorMessage().
func (s *Session) ErrorMessage() string {
	return s.State().ErrorMessage()
}

func (s *Session) begin() {
	s.mu.Lock()
	s.inflight++
	state := s.snapshot()
	s.mu.Unlock()

	s.notify(state)
}

func (s *Session) record(apply func()) {
	s.mu.Lock()
	apply()
	state := s.snapshot()
	s.mu.Unlock()

	s.notify(state)
}

func (s *Session) end() {
	s.mu.Lock()
	s.inflight--
	state := s.snapshot()
	s.mu.Unlock()

	s.notify(state)
}

func (s *Session) snapshot() State {
	state := State{
		Loading: s.inflight > 0,
		Err:     s.err,
	}
	if s.movie != nil {
		m := *s.movie
		state.Movie = &m
	}
	if s.results != nil {
		state.Results = append([]movie.SearchEntry(nil), s.results...)
	}
	return state
}

func (s *Session) notify(state State) {
	if s.observer != nil {
		s.observer(state)
	}
}
