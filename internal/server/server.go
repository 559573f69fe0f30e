// Package server exposes the collision detector as an HTTP and websocket
// query service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/zeusync/narrowphase/internal/core/collision"
	"github.com/zeusync/narrowphase/internal/core/observability/log"
)

// Server answers collision queries.
type Server struct {
	config   Config
	detector *collision.Detector
	logger   log.Log

	httpServer *http.Server
	listener   net.Listener
	mux        *http.ServeMux

	// Server state
	running int32 // atomic bool
	closed  int32 // atomic bool

	requests atomic.Uint64
	serveErr chan error
}

// Config holds server configuration
type Config struct {
	ListenAddr string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// MaxMessageSize bounds request bodies and websocket frames.
	MaxMessageSize int64
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() Config {
	return Config{
		ListenAddr:      "127.0.0.1:8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxMessageSize:  1 << 20, // 1MB
	}
}

func (c Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("%w: max message size %d", ErrInvalidConfig, c.MaxMessageSize)
	}
	return nil
}

// NewServer creates a server around detector. A nil detector gets the defaults.
func NewServer(config Config, detector *collision.Detector, logger log.Log) (*Server, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNop()
	}
	if detector == nil {
		detector = collision.NewDetector(collision.WithLogger(logger))
	}

	s := &Server{
		config:   config,
		detector: detector,
		logger:   logger.With(log.String("component", "server")),
		serveErr: make(chan error, 1),
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("POST /v1/detect", s.handleDetect)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)

	s.logger.Info("Server created",
		log.String("listen_addr", config.ListenAddr),
		log.Int64("max_message_size", config.MaxMessageSize))

	return s, nil
}

// Handler returns the routing handler, for embedding or httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	if atomic.LoadInt32(&s.closed) == 1 {
		return ErrServerClosed
	}

	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		return ErrServerAlreadyRunning
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.config.ListenAddr)
	if err != nil {
		atomic.StoreInt32(&s.running, 0)
		s.logger.Error("Failed to create listener", log.Error(err))
		return fmt.Errorf("%w: %w", ErrListenerFailed, err)
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:      s.mux,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	go func() {
		err := s.httpServer.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Serve failed", log.Error(err))
		}
		s.serveErr <- err
	}()

	s.logger.Info("Server listening", log.String("addr", listener.Addr().String()))
	return nil
}

// Stop shuts the server down gracefully. A stopped server cannot be restarted.
func (s *Server) Stop(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.running, 1, 0) {
		return ErrServerNotRunning
	}
	atomic.StoreInt32(&s.closed, 1)

	s.logger.Info("Stopping server")

	if s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	<-s.serveErr

	stats := s.detector.Stats()
	s.logger.Info("Server stopped",
		log.Uint64("requests", s.requests.Load()),
		log.Uint64("queries", stats.Queries),
		log.Uint64("intersections", stats.Intersections))
	return nil
}

// IsRunning reports whether Start succeeded and Stop has not been called.
func (s *Server) IsRunning() bool {
	return atomic.LoadInt32(&s.running) == 1
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}
