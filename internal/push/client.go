package push

import (
	"context"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer; viewers only send pongs
	maxMessageSize = 512

	// Buffer size for outbound messages
	sendBufferSize = 16
)

// Registrar is the part of the hub a client needs
type Registrar interface {
	Unregister(c *Client)
}

// Client represents one connected scoreboard viewer
type Client struct {
	ID   string
	Send chan Message

	conn *websocket.Conn
	hub  Registrar
}

// NewClient creates a client for an upgraded connection
func NewClient(id string, conn *websocket.Conn, hub Registrar) *Client {
	return &Client{
		ID:   id,
		Send: make(chan Message, sendBufferSize),
		conn: conn,
		hub:  hub,
	}
}

// ReadPump drains the connection so pings and close frames are processed.
// Viewers have nothing to say; any payload is discarded.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("push: client %s unexpected close: %v", c.ID, err)
			}
			return
		}
	}
}

// WritePump pumps messages from the hub to the connection
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg, ok := <-c.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("push: client %s write error: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues a message without blocking. Returns false when the
// viewer's buffer is full.
func (c *Client) TrySend(msg Message) bool {
	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}
