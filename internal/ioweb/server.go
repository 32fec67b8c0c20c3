// Package ioweb exposes the search compositor over HTTP. The server
// is read-only: every route is GET, and request validation runs
// before any query is composed.
package ioweb

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/tirthdb"
)

const shutdownGrace = 10 * time.Second

// Server serves the health and search endpoints.
type Server struct {
	cfg      *config.Config
	searcher tirthdb.Searcher
}

// New creates a Server backed by the given searcher.
func New(cfg *config.Config, s tirthdb.Searcher) *Server {
	return &Server{cfg: cfg, searcher: s}
}

// Handler builds the route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /api/search", s.search)
	mux.HandleFunc("/", notFound)

	return recovery(secureHeaders(cors(accessLog(mux))))
}

// Run serves until the context is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return StartError(srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), shutdownGrace,
	)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return ShutdownError(err)
	}
	return nil
}
