package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps http.Server with graceful shutdown. Both the orchestrator and
// the record store run on it.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	mu        sync.Mutex
	bound     net.Addr
	ready     chan struct{}
	readyOnce sync.Once
}

// NewServer creates a new HTTP server from the given config and handler.
// net/http's own errors (TLS handshakes, malformed requests) go to logger.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start listens on the configured address and serves until Shutdown.
// It returns nil on graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.mu.Lock()
	s.bound = ln.Addr()
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })

	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Ready is closed once Start has a listening socket.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown drains in-flight requests. Without a deadline on ctx it waits
// at most 10 seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	return s.srv.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// BoundAddr returns the address actually listened on, which differs from
// Addr when the configured port is 0. It is nil before Ready.
func (s *Server) BoundAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bound
}
