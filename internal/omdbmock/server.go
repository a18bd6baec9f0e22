// Package omdbmock serves fixture records in the OMDb wire format.
package omdbmock

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Messages OMDb returns with Response "False".
const (
	MsgNoAPIKey      = "No API key provided."
	MsgInvalidAPIKey = "Invalid API key!"
	MsgLimitReached  = "Request limit reached!"
	MsgIncorrectID   = "Incorrect IMDb ID."
	MsgNotFound      = "Movie not found!"
	MsgBadRequest    = "Something went wrong."
)

// Server is an OMDb stand-in.
type Server struct {
	fixtures Fixtures
	apiKey   string
	limit    int64
	requests atomic.Int64
	router   chi.Router
	httpSrv  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithAPIKey makes the server reject any other apikey value.
// Without it any non-empty key is accepted.
func WithAPIKey(key string) Option {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithRequestLimit answers "Request limit reached!" once n requests were served.
func WithRequestLimit(n int) Option {
	return func(s *Server) {
		s.limit = int64(n)
	}
}

// New builds a mock server around fixtures.
func New(fixtures Fixtures, opts ...Option) *Server {
	s := &Server{fixtures: fixtures}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Get("/", s.handleQuery)
	s.router = r
	return s
}

// Handler returns the router, e.g. for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Requests reports how many API requests were answered.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// Start listens on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	key := query.Get("apikey")
	switch {
	case key == "":
		respondFailure(w, http.StatusUnauthorized, MsgNoAPIKey)
		return
	case s.apiKey != "" && key != s.apiKey:
		respondFailure(w, http.StatusUnauthorized, MsgInvalidAPIKey)
		return
	}

	if n := s.requests.Add(1); s.limit > 0 && n > s.limit {
		respondFailure(w, http.StatusUnauthorized, MsgLimitReached)
		return
	}

	if id := query.Get("i"); id != "" {
		rec, ok := s.fixtures.Lookup(id)
		if !ok {
			respondFailure(w, http.StatusOK, MsgIncorrectID)
			return
		}
		respondJSON(w, http.StatusOK, rec)
		return
	}

	if q := query.Get("s"); q != "" {
		items := s.fixtures.Search(q)
		if len(items) == 0 {
			respondFailure(w, http.StatusOK, MsgNotFound)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"Search":       items,
			"totalResults": strconv.Itoa(len(items)),
			"Response":     "True",
		})
		return
	}

	respondFailure(w, http.StatusOK, MsgBadRequest)
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"Response": "False", "Error": message})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("Failed to write mock response", "error", err)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Debug("Mock OMDb request",
			"request_id", middleware.GetReqID(r.Context()),
			"i", r.URL.Query().Get("i"),
			"s", r.URL.Query().Get("s"),
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
