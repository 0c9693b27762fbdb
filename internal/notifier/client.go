package notifier

import (
	"github.com/gorilla/websocket"

	"bytestudio_backend/internal/logger"
)

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{hub: hub, conn: conn, send: make(chan Event, 16)}
}

// readPump discards inbound frames; the channel is push-only. Its job is to
// notice the peer going away.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for ev := range c.send {
		if err := c.conn.WriteJSON(ev); err != nil {
			logger.Debug("notification write failed", "error", err)
			return
		}
	}
}
