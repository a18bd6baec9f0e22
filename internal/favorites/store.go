// Package favorites keeps the user's favorite movies, mirrored to a
// kvstore.Backend after every change.
//
// A Store has a single writer. It is not safe for concurrent mutation.
package favorites

import (
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/lepinkainen/moviefav/internal/kvstore"
	"github.com/lepinkainen/moviefav/internal/movie"
)

// DefaultKey is the storage key holding the serialized collection.
const DefaultKey = "FavoriteMovies"

// Store is an ordered collection of movies, unique by ID.
type Store struct {
	backend  kvstore.Backend
	key      string
	movies   []movie.Movie
	onChange func([]movie.Movie)
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithOnChange registers fn to be called with a copy of the collection after
// every mutation that changed it.
func WithOnChange(fn func([]movie.Movie)) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

// New creates a store and loads any previously persisted favorites.
// Storage problems never fail construction; the store starts empty instead.
func New(backend kvstore.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadFromStorage()
	return s
}

// Add appends m unless a movie with the same ID is already stored.
func (s *Store) Add(m movie.Movie) {
	if s.Contains(m.ID) {
		return
	}
	s.movies = append(s.movies, m.Clone())
	s.changed()
}

// Remove drops every entry with the given ID and persists the result.
// An unknown ID leaves the collection unchanged and does not notify.
func (s *Store) Remove(id string) {
	before := len(s.movies)
	s.movies = slices.DeleteFunc(s.movies, func(m movie.Movie) bool {
		return m.ID == id
	})
	s.saveToStorage()
	if len(s.movies) != before {
		s.notify()
	}
}

// Toggle removes m if it is a favorite and adds it otherwise.
// It reports whether m is a favorite afterwards.
func (s *Store) Toggle(m movie.Movie) bool {
	if s.Contains(m.ID) {
		s.Remove(m.ID)
		return false
	}
	s.Add(m)
	return true
}

func (s *Store) Contains(id string) bool {
	return s.index(id) >= 0
}

// Get returns the stored movie with the given ID.
func (s *Store) Get(id string) (movie.Movie, bool) {
	i := s.index(id)
	if i < 0 {
		return movie.Movie{}, false
	}
	return s.movies[i].Clone(), true
}

// All returns a deep copy of the collection in insertion order.
func (s *Store) All() []movie.Movie {
	if s.movies == nil {
		return nil
	}
	all := make([]movie.Movie, len(s.movies))
	for i, m := range s.movies {
		all[i] = m.Clone()
	}
	return all
}

func (s *Store) Len() int {
	return len(s.movies)
}

// Clear empties the collection and persists the empty state.
func (s *Store) Clear() {
	hadMovies := len(s.movies) > 0
	s.movies = nil
	s.saveToStorage()
	if hadMovies {
		s.notify()
	}
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.movies, func(m movie.Movie) bool {
		return m.ID == id
	})
}

func (s *Store) changed() {
	s.saveToStorage()
	s.notify()
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.All())
	}
}

func (s *Store) loadFromStorage() {
	data, found, err := s.backend.Get(s.key)
	if err != nil {
		slog.Warn("Failed to load favorites, starting empty", "key", s.key, "error", err)
		return
	}
	if !found {
		slog.Debug("No stored favorites", "key", s.key)
		return
	}

	var movies []movie.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		slog.Warn("Stored favorites are not decodable, starting empty", "key", s.key, "error", err)
		return
	}

	// Older or hand-edited blobs may repeat an ID; keep the first.
	for _, m := range movies {
		if !s.Contains(m.ID) {
			s.movies = append(s.movies, m)
		}
	}
	slog.Debug("Loaded favorites", "key", s.key, "count", len(s.movies))
}

func (s *Store) saveToStorage() {
	movies := s.movies
	if movies == nil {
		movies = []movie.Movie{}
	}

	data, err := json.Marshal(movies)
	if err != nil {
		slog.Warn("Failed to encode favorites", "error", err)
		return
	}
	if err := s.backend.Set(s.key, data); err != nil {
		slog.Warn("Failed to persist favorites", "key", s.key, "error", err)
	}
}
