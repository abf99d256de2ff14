// Package server provides the HTTP server that exposes content negotiation.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/vyrodovalexey/avanegotiate/internal/config"
	"github.com/vyrodovalexey/avanegotiate/internal/negotiate"
	"github.com/vyrodovalexey/avanegotiate/internal/observability"
)

// ginModeOnce ensures gin.SetMode is only called once to avoid race conditions
var ginModeOnce sync.Once

// Server is the HTTP server of the negotiation service.
type Server struct {
	engine         *gin.Engine
	httpServer     *http.Server
	listener       net.Listener
	pipeline       *negotiate.Pipeline
	logger         observability.Logger
	metrics        *observability.Metrics
	tracerProvider trace.TracerProvider
	config         *config.Config
	mu             sync.RWMutex
	running        bool
}

// Option is a functional option for configuring the server.
type Option func(*Server)

// WithLogger sets the logger for the server.
func WithLogger(logger observability.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics sets the HTTP metrics. The metrics endpoint is served only
// when metrics are set and enabled in configuration.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = metrics
	}
}

// WithTracerProvider sets the tracer provider for request spans.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracerProvider = provider
	}
}

// New creates a new server for cfg that negotiates through pipeline.
func New(cfg *config.Config, pipeline *negotiate.Pipeline, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ginModeOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
	})

	s := &Server{
		engine:   gin.New(),
		pipeline: pipeline,
		logger:   observability.NopLogger(),
		config:   cfg,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s
}

// setupRoutes installs middleware and routes on the engine.
func (s *Server) setupRoutes() {
	s.engine.Use(RequestID(), Logging(s.logger), Recovery(s.logger))
	if s.config.Tracing.Enabled {
		s.engine.Use(Tracing(s.tracerProvider, s.config.Tracing.ServiceName))
	}
	if s.metrics != nil {
		s.engine.Use(Metrics(s.metrics))
	}
	if s.config.Server.MaxRequestBodySize > 0 {
		s.engine.Use(BodyLimit(s.config.Server.MaxRequestBodySize))
	}

	s.engine.GET("/health", handleHealth)
	if s.metrics != nil && s.config.Metrics.Enabled {
		path := s.config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		s.engine.GET(path, gin.WrapH(s.metrics.Handler()))
	}

	v1 := s.engine.Group("/v1", negotiate.Middleware(s.pipeline))
	v1.POST("/echo", handleEcho)
	v1.GET("/formats", handleFormats(s.pipeline.Registry()))
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured address and serves until Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}

	sc := s.config.Server
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", sc.Addr())
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", sc.Addr(), err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:      s.engine,
		ReadTimeout:  sc.ReadTimeout.Duration(),
		WriteTimeout: sc.WriteTimeout.Duration(),
		IdleTimeout:  sc.IdleTimeout.Duration(),
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("starting HTTP server",
		observability.String("address", ln.Addr().String()),
		observability.Strings("formats", s.pipeline.Registry().SupportedTypes()),
		observability.String("default", s.pipeline.Registry().DefaultType()),
	)

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop stops the HTTP server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	s.logger.Info("stopping HTTP server")

	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("HTTP server stopped")
	return nil
}

// IsRunning returns whether the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the address the server listens on, or an empty string when
// it is not running.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil || !s.running {
		return ""
	}
	return s.listener.Addr().String()
}
