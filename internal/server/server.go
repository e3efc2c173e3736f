// Package server exposes the elimination engine over a small JSON HTTP API.
//
// Routes:
//
//	POST /v1/reduce   ref | rref | rank | steps of a matrix
//	POST /v1/solve    classify and solve A·x = b
//	POST /v1/inverse  A⁻¹ (422 when singular)
//	GET  /healthz     liveness
//	GET  /metrics     Prometheus exposition
//
// Every request runs its own Eliminator; handlers share nothing but the
// metrics registry and the logger.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// DefaultMaxDim is the largest row or column count accepted per request.
	DefaultMaxDim = 512

	// DefaultMaxStepsDim bounds steps mode, whose response holds one snapshot per operation.
	DefaultMaxStepsDim = 64

	// DefaultMaxBody caps request bodies (1 MiB).
	DefaultMaxBody = 1 << 20

	shutdownTimeout = 5 * time.Second
)

// Server is the HTTP front end. Build it with New.
type Server struct {
	logger  *log.Logger
	metrics *metrics
	router  chi.Router

	maxDim      int
	maxStepsDim int
	maxBody     int64
}

// Option configures a Server.
type Option func(*Server)

// WithMaxDim sets the largest accepted row or column count. Non-positive values are ignored.
func WithMaxDim(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxDim = n
		}
	}
}

// WithMaxStepsDim sets the largest row or column count accepted in steps mode.
// Non-positive values are ignored.
func WithMaxStepsDim(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxStepsDim = n
		}
	}
}

// WithMaxBody sets the request body cap in bytes. Non-positive values are ignored.
func WithMaxBody(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// New builds a Server logging through logger (log.Default() when nil).
func New(logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		logger:      logger,
		metrics:     newMetrics(),
		maxDim:      DefaultMaxDim,
		maxStepsDim: DefaultMaxStepsDim,
		maxBody:     DefaultMaxBody,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/reduce", s.handleReduce)
		r.Post("/solve", s.handleSolve)
		r.Post("/inverse", s.handleInverse)
	})

	return r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
