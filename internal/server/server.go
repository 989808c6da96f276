// Package server exposes the analysis pipeline over HTTP and websockets.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ppiankov/fakenews/internal/cache"
	"github.com/ppiankov/fakenews/internal/model"
	"github.com/ppiankov/fakenews/internal/pipeline"
	"github.com/ppiankov/fakenews/internal/worker"
	"github.com/robfig/cron/v3"
)

// Server holds the HTTP router and its dependencies
type Server struct {
	pipeline *pipeline.Pipeline
	cache    cache.Cache
	config   *model.Config
	limiter  *worker.Limiter // nil when rate limiting is disabled
	logger   *slog.Logger
	router   *mux.Router
}

// New creates a server. c is the pipeline's cache (may be nil); it is only
// used to schedule sweeps of backends that need them.
func New(p *pipeline.Pipeline, c cache.Cache, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := p.Config()
	s := &Server{
		pipeline: p,
		cache:    c,
		config:   cfg,
		logger:   logger,
	}
	if cfg.Server.RequestsPerSecond > 0 {
		s.limiter = worker.NewLimiter(cfg.Server.RequestsPerSecond, cfg.Server.Burst)
		for _, limit := range cfg.Server.ClientLimits {
			s.limiter.SetKeyRate(limit.Client, limit.RequestsPerSecond, limit.Burst)
		}
	}
	s.router = s.setupRoutes()

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recoverMiddleware)
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/", s.indexHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)

	limited := api.NewRoute().Subrouter()
	limited.Use(s.rateLimitMiddleware)
	limited.HandleFunc("/analyze", s.analyzeHandler).Methods(http.MethodPost)
	limited.HandleFunc("/summary", s.summaryHandler).Methods(http.MethodPost)
	limited.HandleFunc("/analyze/ws", s.streamHandler).Methods(http.MethodGet)

	return r
}

// Run serves on the configured address until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.config.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	scheduler, err := s.startScheduler()
	if err != nil {
		return err
	}
	defer func() { <-scheduler.Stop().Done() }()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// startScheduler registers background maintenance jobs and starts the cron scheduler
func (s *Server) startScheduler() (*cron.Cron, error) {
	c := cron.New()

	if sweeper, ok := s.cache.(cache.Sweeper); ok && s.config.Cache.SweepSchedule != "" {
		_, err := c.AddFunc(s.config.Cache.SweepSchedule, func() {
			removed, err := sweeper.Sweep()
			if err != nil {
				s.logger.Warn("cache sweep failed", "error", err)
				return
			}
			s.logger.Debug("cache sweep complete", "removed", removed)
		})
		if err != nil {
			return nil, fmt.Errorf("schedule cache sweep %q: %w", s.config.Cache.SweepSchedule, err)
		}
	}

	if s.limiter != nil {
		_, err := c.AddFunc("@every 10m", func() {
			if n := s.limiter.Prune(30 * time.Minute); n > 0 {
				s.logger.Debug("pruned idle rate limiters", "count", n, "remaining", s.limiter.Len())
			}
		})
		if err != nil {
			return nil, fmt.Errorf("schedule limiter prune: %w", err)
		}
	}

	c.Start()
	return c, nil
}
