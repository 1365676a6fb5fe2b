package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/mcoot/semantly-go/internal/model"
)

// Hub holds the set of live connections subscribed to one game code.
// Each hub has its own lock, so publishing to one game never contends
// with subscriptions on another.
type Hub struct {
	code    model.GameCode
	mu      sync.Mutex
	clients map[*Client]bool
	logger  *slog.Logger
}

func newHub(code model.GameCode, logger *slog.Logger) *Hub {
	return &Hub{
		code:    code,
		clients: make(map[*Client]bool),
		logger:  logger.With(slog.String("game", string(code))),
	}
}

func (h *Hub) add(client *Client) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	return len(h.clients)
}

// remove deletes a client and reports how many remain
func (h *Hub) remove(client *Client) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	return len(h.clients)
}

// publish delivers message to every current client, best-effort. A
// client whose send buffer is full is skipped, never waited on, so one
// stalled connection cannot block delivery to the rest.
func (h *Hub) publish(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			h.logger.Warn("ws message dropped, client buffer full")
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// HubManager owns the per-game-code hubs. Groups are created on first
// subscribe and discarded when their last connection leaves.
type HubManager struct {
	mu     sync.RWMutex
	hubs   map[model.GameCode]*Hub
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.GameCode]*Hub),
		logger: logger.With(slog.String("component", "ws")),
	}
}

// Subscribe registers a connection under a game code's group, creating
// the group if needed. The add happens under the manager lock so a
// concurrent Unsubscribe cannot discard the hub between lookup and add.
func (m *HubManager) Subscribe(code model.GameCode, client *Client) {
	m.mu.Lock()
	hub, ok := m.hubs[code]
	if !ok {
		hub = newHub(code, m.logger)
		m.hubs[code] = hub
	}
	count := hub.add(client)
	m.mu.Unlock()

	m.logger.Info("ws client subscribed",
		slog.String("game", string(code)),
		slog.Int("total_clients", count))
}

// Unsubscribe removes a connection from a game code's group; the group
// is discarded once empty
func (m *HubManager) Unsubscribe(code model.GameCode, client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hub, ok := m.hubs[code]
	if !ok {
		return
	}

	remaining := hub.remove(client)
	if remaining == 0 {
		delete(m.hubs, code)
	}
	m.logger.Info("ws client unsubscribed",
		slog.String("game", string(code)),
		slog.Int("total_clients", remaining))
}

// Publish delivers an event to every connection in the code's group.
// Publishing to a code with no group is a no-op.
func (m *HubManager) Publish(code model.GameCode, event model.GuessEvent) {
	m.mu.RLock()
	hub := m.hubs[code]
	m.mu.RUnlock()

	if hub == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		m.logger.Error("ws failed to marshal event",
			slog.String("game", string(code)),
			slog.String("error", err.Error()))
		return
	}

	hub.publish(data)
}

// GroupCount returns the number of active broadcast groups
func (m *HubManager) GroupCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hubs)
}
