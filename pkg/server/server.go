package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionSetup configures a freshly connected session: create bindings,
// seed initial classes, and start any host-side drivers. It runs before
// the session's loops start.
type SessionSetup func(*Session)

// Server streams class patch frames to WebSocket clients.
type Server struct {
	config  *ServerConfig
	logger  *slog.Logger
	metrics *metrics

	upgrader websocket.Upgrader
	router   chi.Router
	httpSrv  *http.Server

	setup  SessionSetup
	nextID atomic.Uint64
}

// NewServer creates a server with the given configuration. A nil config
// uses defaults.
func NewServer(config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	config.normalize()

	s := &Server{
		config:  config,
		logger:  config.Logger,
		metrics: sharedMetrics(config.MetricsNamespace),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWS)
	r.Handle("/metrics", promhttp.Handler())
	s.router = r

	return s
}

// OnSession registers the setup hook run for every new session.
func (s *Server) OnSession(fn SessionSetup) {
	s.setup = fn
}

// Router returns the HTTP handler, useful for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:    s.config.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

// handleWS upgrades the connection and runs the session's loops. Blocks in
// the read loop for the connection's lifetime.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	id := fmt.Sprintf("s%d", s.nextID.Add(1))
	sess := newSession(id, conn, s.config, s.logger, s.metrics)
	s.metrics.activeSessions.Inc()
	s.logger.Info("session connected", "session", id, "remote", r.RemoteAddr)

	if s.setup != nil {
		s.setup(sess)
	}

	go sess.WriteLoop()
	go sess.RunCycles(r.Context())
	sess.ReadLoop()
}
