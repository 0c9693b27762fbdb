package notifier

import (
	"sync"

	"bytestudio_backend/internal/logger"
)

// Event is the frame pushed to connected admin dashboards.
type Event struct {
	Event   string `json:"event"`
	Kind    string `json:"kind"` // info | success | error
	Message string `json:"message"`
}

// Hub fans events out to connected websocket clients. Slow clients are
// dropped rather than blocking the broadcast loop.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			logger.Info("notification client connected", "total", h.ClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logger.Info("notification client disconnected", "total", h.ClientCount())

		case ev := <-h.broadcast:
			h.fanOut(ev)
		}
	}
}

func (h *Hub) fanOut(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- ev:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// Publish enqueues an event without blocking the caller. Notifications are
// best-effort; a full buffer drops the event.
func (h *Hub) Publish(event, kind, message string) {
	select {
	case h.broadcast <- Event{Event: event, Kind: kind, Message: message}:
	default:
		logger.Warn("notification dropped, broadcast buffer full", "event", event)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
