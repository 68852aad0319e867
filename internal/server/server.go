// Package server exposes the country directory over HTTP as a small JSON API:
// the full record list, a single record with expanded borders, and a health
// endpoint. All responses are read-only views over the in-memory directory.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/atlasd/internal/directory"
)

// Timeouts for the HTTP server. Requests are answered from memory, so these
// mainly bound misbehaving clients.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the country directory API.
type Server struct {
	dir    *directory.Directory
	logger zerolog.Logger
	http   *http.Server
}

// Options configures a Server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// CORSAllowedOrigin is served in Access-Control-Allow-Origin so a
	// separately hosted client can call the API. Empty disables the header.
	CORSAllowedOrigin string
}

// New creates a Server over dir.
func New(dir *directory.Directory, logger zerolog.Logger, opts Options) *Server {
	s := &Server{
		dir:    dir,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /countries", s.handleListCountries)
	mux.HandleFunc("GET /countries/{code}", s.handleGetCountry)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	var handler http.Handler = mux
	handler = corsMiddleware(handler, opts.CORSAllowedOrigin)
	handler = requestLogMiddleware(handler, logger)

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. On cancellation the server drains in-flight requests for up to
// shutdownTimeout before returning.
func (s *Server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().
			Str("addr", s.http.Addr).
			Int("countries", s.dir.Len()).
			Msg("serving country directory")

		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info().Msg("shutting down")
		return s.http.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Handler returns the server's HTTP handler, including middleware. Exposed
// for tests driving the API through httptest.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
