package ws

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"mlb-scores-service/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

// Client is one websocket consumer.
type Client struct {
	ID     string
	conn   *websocket.Conn
	send   chan Event
	hub    unregisterer
	logger *slog.Logger
}

type unregisterer interface {
	Unregister(c *Client)
}

func newClient(id string, conn *websocket.Conn, hub unregisterer, logger *slog.Logger) *Client {
	return &Client{
		ID:     id,
		conn:   conn,
		send:   make(chan Event, sendBufferSize),
		hub:    hub,
		logger: logger,
	}
}

// readPump drains inbound frames so control messages are processed; the
// feed is one-way, so payloads are discarded.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			if _, _, err := c.conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logging.Warn(c.logger, "ws unexpected close", "client_id", c.ID, "err", err)
				}
				return
			}
		}
	}
}

// writePump pushes events and keepalive pings to the connection.
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				logging.Warn(c.logger, "ws write failed", "client_id", c.ID, "err", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) trySend(event Event) bool {
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}
