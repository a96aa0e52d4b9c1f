package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/chris/dashboard-wallpaper/pkg/logger"
)

// ErrHubClosed is returned by AddConnection after Close.
var ErrHubClosed = errors.New("hub closed")

// clientBuffer is how many messages may queue for one client before it is dropped.
const clientBuffer = 16

// Hub fans published messages out to every registered connection. It is safe for
// concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]chan []byte
	closed  bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]chan []byte)}
}

var (
	_ Publisher         = (*Hub)(nil)
	_ ConnectionManager = (*Hub)(nil)
)

// AddConnection registers connectionID.
func (h *Hub) AddConnection(_ context.Context, connectionID string) (<-chan []byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}
	if _, ok := h.clients[connectionID]; ok {
		return nil, fmt.Errorf("connection %s already registered", connectionID)
	}
	ch := make(chan []byte, clientBuffer)
	h.clients[connectionID] = ch
	return ch, nil
}

// RemoveConnection unregisters connectionID and closes its channel. Unknown ids are ignored.
func (h *Hub) RemoveConnection(_ context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.clients[connectionID]; ok {
		delete(h.clients, connectionID)
		close(ch)
	}
	return nil
}

// Close closes every client channel and refuses further connections. It is meant to
// run on server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, ch := range h.clients {
		delete(h.clients, id)
		close(ch)
	}
}

// Count returns the number of registered connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends message to all connected clients. A client whose buffer is full is
// disconnected rather than allowed to block the publisher.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	var stale []string
	h.mu.RLock()
	for id, ch := range h.clients {
		select {
		case ch <- payload:
		default:
			stale = append(stale, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range stale {
		logger.FromContext(ctx).Info("slow connection found, dropping", "connectionId", id)
		_ = h.RemoveConnection(ctx, id)
	}
	return nil
}
