// Package server exposes game sessions over websockets.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server hands every websocket connection its own engine.
type Server struct {
	universe *models.Universe
	newRand  func() engine.Rand
	logger   *zap.Logger
	hub      *Hub
}

type Option func(*Server)

// WithRandSource sets the factory for each session's random source.
func WithRandSource(f func() engine.Rand) Option {
	return func(s *Server) { s.newRand = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server over u. A nil universe selects the embedded catalog.
// seed 0 gives every session a time-based seed.
func New(u *models.Universe, seed int64, opts ...Option) *Server {
	if u == nil {
		u = models.DefaultUniverse()
	}
	s := &Server{
		universe: u,
		newRand:  func() engine.Rand { return engine.NewRand(seed) },
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = NewHub(s.logger)
	return s
}

func (s *Server) newEngine() *engine.Engine {
	return engine.NewEngine(s.universe,
		engine.WithRand(s.newRand()),
		engine.WithLogger(s.logger))
}

// Hub returns the connection registry.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler routes /ws and /healthz. Run must be active for /ws to accept.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{
		id:     uuid.NewString(),
		hub:    s.hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		server: s,
	}
	if !client.hub.add(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// ListenAndServe runs the hub and an HTTP server on addr until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	go s.hub.Run(ctx)

	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown failed")
	}
}
