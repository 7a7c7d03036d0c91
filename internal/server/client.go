package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// Client is one websocket connection and the game session it drives. Only
// readPump touches the engine, and it is the only sender on send.
type Client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	server *Server
	engine *engine.Engine
}

func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		close(c.send)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.server.logger.Warn("websocket read failed", zap.String("session", c.id), zap.Error(err))
			}
			return
		}

		reply := c.handle(message)
		data, err := json.Marshal(reply)
		if err != nil {
			c.server.logger.Error("failed to marshal frame", zap.String("session", c.id), zap.Error(err))
			continue
		}
		c.send <- data
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) handle(message []byte) ServerFrame {
	var frame ClientFrame
	if err := json.Unmarshal(message, &frame); err != nil {
		return c.fail("malformed frame")
	}

	switch frame.Type {
	case FrameInit:
		if c.engine != nil {
			return c.fail("session already started")
		}
		c.engine = c.server.newEngine()
		c.engine.Initialize(frame.Captain, frame.Ship)
		return c.lines(c.engine.Welcome())

	case FrameCommand:
		if c.engine == nil {
			return c.fail("send an init frame first")
		}
		return c.lines(c.engine.SubmitCommand(frame.Text))
	}
	return c.fail("unknown frame type " + frame.Type)
}

func (c *Client) lines(lines []models.Line) ServerFrame {
	e := c.engine
	return ServerFrame{
		Type:    FrameLines,
		Session: c.id,
		Lines:   lines,
		Status: &Status{
			Player:   e.PlayerName(),
			Ship:     e.ShipName(),
			Credits:  e.Credits(),
			Days:     e.DaysElapsed(),
			Cargo:    e.CargoCount(),
			MaxCargo: e.MaxCargo(),
			Location: e.LocationName(),
		},
	}
}

func (c *Client) fail(msg string) ServerFrame {
	return ServerFrame{Type: FrameError, Session: c.id, Error: msg}
}
