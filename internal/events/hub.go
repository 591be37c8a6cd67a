// Package events fans portfolio change events out to connected websocket
// clients.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
)

const writeWait = 2 * time.Second

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{clients: make(map[*websocket.Conn]struct{}), logger: logger}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Hook returns a ChangeHook that broadcasts every event.
func (h *Hub) Hook() portfolio.ChangeHook {
	return func(_ context.Context, ev portfolio.ChangeEvent) {
		h.BroadcastJSON(ev)
	}
}

func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("failed to marshal event", zap.Error(err))
		return
	}
	h.Broadcast(b)
}

// Broadcast writes payload to every client, dropping clients that fail.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("dropping websocket client", zap.Error(err))
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		_ = ws.Close()
		delete(h.clients, ws)
	}
}
