// Package feed pushes live events (new signups, theme changes) to
// connected admin dashboards over websockets.
package feed

import (
	"log"
	"sync"
	"time"

	"mentorloop/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is the JSON frame written to every connected dashboard.
type Event struct {
	Type    string `json:"type"`
	Variant string `json:"variant,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Theme   string `json:"theme,omitempty"`
	At      string `json:"at"`
}

type Hub struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if oldConn, exists := h.connections[id]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[id] = conn
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.connections[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, id)
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast writes the event to every connection. Dead connections are
// dropped; delivery is fire and forget.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.connections {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("feed write failed, dropping connection: id=%s err=%v", id, err)
			_ = conn.Close()
			delete(h.connections, id)
		}
	}
}

// SignupCreated implements the signup module's EventPublisher.
func (h *Hub) SignupCreated(variant domain.Variant, s *domain.Signup) {
	h.Broadcast(Event{
		Type:    "signup.created",
		Variant: string(variant),
		Email:   s.Email,
		Name:    s.FirstName + " " + s.LastName,
		At:      time.Now().UTC().Format(time.RFC3339),
	})
}

// ThemeChanged is wired as a prefs subscriber.
func (h *Hub) ThemeChanged(theme string) {
	h.Broadcast(Event{
		Type:  "theme.changed",
		Theme: theme,
		At:    time.Now().UTC().Format(time.RFC3339),
	})
}
