package server

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// Hub keeps the set of connected clients. Each client owns its own game
// session; the hub only tracks them so they can be counted and closed on
// shutdown.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	active     atomic.Int64
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations until ctx is cancelled, then closes every
// connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.active.Store(int64(len(h.clients)))
			h.logger.Info("client connected", zap.String("session", client.id), zap.Int("active", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.active.Store(int64(len(h.clients)))
				h.logger.Info("client disconnected", zap.String("session", client.id), zap.Int("active", len(h.clients)))
			}
		case <-ctx.Done():
			close(h.done)
			for client := range h.clients {
				client.conn.Close()
				delete(h.clients, client)
			}
			h.active.Store(0)
			return
		}
	}
}

// add registers c and reports false once the hub has stopped.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Active is the number of connected clients.
func (h *Hub) Active() int {
	return int(h.active.Load())
}
