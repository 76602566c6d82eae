package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"hr-dashboard-api/pkg/models"
)

// Client represents a single websocket client connection.
// The actual network conn is managed in the ws handler. Send must not block.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active subscriber connections and broadcasts change events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[Client]struct{}),
		logger:  logger,
	}
}

// Register adds a subscriber.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a subscriber.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Len returns the number of registered subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast hands a message to every subscriber. Sends happen outside the lock, so
// Register and Unregister never wait on a subscriber. A failed send is left for the
// connection's own handler to clean up.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	clients := make([]Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if ok := c.Send(message); !ok {
			h.logger.Debug("realtime send failed")
		}
	}
}

// Publish encodes evt as JSON and broadcasts it.
func (h *Hub) Publish(evt models.Event) {
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("encode realtime event", "type", evt.Type, "err", err)
		return
	}
	h.Broadcast(b)
}
