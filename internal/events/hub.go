// internal/events/hub.go
package events

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Hub fans lifecycle events out to every connected websocket client. The
// stream is broadcast-only; clients never send domain messages.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 256),
		logger:     logger,
	}
}

// Publish queues an event for broadcast. Drops the event when the hub is
// saturated rather than blocking a lifecycle transaction.
func (h *Hub) Publish(eventType string, payload interface{}) {
	select {
	case h.broadcast <- NewEvent(eventType, payload):
	default:
		h.logger.Warn("event dropped, broadcast buffer full", zap.String("type", eventType))
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info("event stream client connected",
		zap.String("user_id", client.userID),
		zap.Int("total", len(h.clients)),
	)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Info("event stream client disconnected",
			zap.String("user_id", client.userID),
			zap.Int("total", len(h.clients)),
		)
	}
}

func (h *Hub) broadcastEvent(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer, skip this event for them.
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.logger.Info("event hub shut down")
}
