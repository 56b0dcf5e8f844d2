// Package server exposes a session over a JSON HTTP API.
//
// The session is not safe for concurrent use, so every handler that touches
// it runs under a single mutex: requests are applied one at a time, in the
// order they acquire the lock, and each one is atomic.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/session"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 5 * time.Second

// Server holds the state for the REST API server.
type Server struct {
	mu      sync.Mutex
	session *session.Session

	logger   *slog.Logger
	gatherer prometheus.Gatherer
	router   *gin.Engine
}

// New creates a Server around s. Metrics are served from gatherer when it is
// not nil. The logger is taken from ctx.
func New(ctx context.Context, s *session.Session, gatherer prometheus.Gatherer) *Server {
	r := gin.New()
	srv := &Server{
		session:  s,
		logger:   ctxlog.FromContext(ctx),
		gatherer: gatherer,
		router:   r,
	}
	r.Use(gin.Recovery(), srv.requestContext())
	srv.setupRoutes()
	return srv
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	s.logger.Info("HTTP server starting.", "address", addr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	s.logger.Debug("HTTP server shut down gracefully.")
	return nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	if s.gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := s.router.Group("/v1")
	v1.POST("/programs", s.handleDefineProgram)
	v1.POST("/interpreters", s.handleDefineInterpreter)
	v1.POST("/translators", s.handleDefineTranslator)
	v1.GET("/programs/:name/executable", s.handleExecutable)
	v1.GET("/graph", s.handleGraph)
	v1.GET("/graph.dot", s.handleGraphDOT)
	v1.GET("/stats", s.handleStats)
}

// requestContext tags every request with an id and attaches a logger
// carrying it to the request context.
func (s *Server) requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		logger := s.logger.With("request_id", id)
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), logger))

		start := time.Now()
		c.Next()
		logger.Debug("Request handled.",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Health check
func (s *Server) healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK\n")
}
