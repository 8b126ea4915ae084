// Package push maintains the set of connected scoreboard viewers and fans
// state updates out to them over WebSocket. Viewers are read-only; every
// mutation still goes through the HTTP API.
package push

import (
	"context"
	"log"
	"sync"
	"time"
)

// MessageTypeState is pushed after every accepted mutation and carries the
// full renderable state.
const MessageTypeState = "state"

// Message is the envelope for every frame sent to a viewer
type Message struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of active viewers and broadcasts messages to them
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// Register adds a viewer to the hub
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a viewer from the hub
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast queues a message for all viewers. A full queue drops the
// message; the next state push supersedes it anyway.
func (h *Hub) Broadcast(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
		log.Println("push: broadcast buffer full, dropping message")
	}
}

// ClientCount returns the number of connected viewers
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	h.clients[c] = true
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
}

func (h *Hub) broadcastMessage(msg Message) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.TrySend(msg) {
			// viewer is not draining its buffer, disconnect it
			log.Printf("push: client %s buffer full, disconnecting", c.ID)
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
