package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Hub fans report events out to every connected map client. Unlike a
// chat hub there is no per-user routing: the public map is one broadcast
// domain.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- data:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an event for every connected client. Never blocks the
// caller: a full broadcast buffer drops the event with a warning.
func (h *Hub) Broadcast(eventType EventType, payload interface{}) {
	event := Event{
		Type:    eventType,
		Payload: payload,
		Meta: &EventMeta{
			Timestamp: time.Now().UTC().UnixMilli(),
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal event", "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		slog.Warn("Broadcast buffer full, dropping event", "type", eventType)
	}
}
