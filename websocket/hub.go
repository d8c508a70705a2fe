package websocket

import (
	"log/slog"
	"sync"
)

// Hub maintains the set of active clients and broadcasts messages to the clients
// of one parent.
type Hub struct {
	// Registered clients by parent ID
	clients map[string]map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Send message to specific parent
	broadcast chan *Message

	quit chan struct{}
	once sync.Once

	mu sync.Mutex
}

type Message struct {
	ParentID string
	Data     []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		quit:       make(chan struct{}),
	}
}

// Register adds a client to its parent's set.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.quit:
	}
}

// Unregister removes the client and closes its send channel.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.quit:
	}
}

// Broadcast queues a message for the parent's clients. When the queue is full
// the message is dropped instead of blocking the caller.
func (h *Hub) Broadcast(message *Message) {
	select {
	case h.broadcast <- message:
	default:
		slog.Warn("Websocket broadcast queue full, dropping message", "parent_id", message.ParentID)
	}
}

// ClientCount returns the number of connected clients of the parent.
func (h *Hub) ClientCount(parentID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[parentID])
}

// Stop ends Run and closes every client.
func (h *Hub) Stop() {
	h.once.Do(func() { close(h.quit) })
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.ParentID]; !ok {
				h.clients[client.ParentID] = make(map[*Client]bool)
			}
			h.clients[client.ParentID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients[message.ParentID] {
				select {
				case client.send <- message.Data:
				default:
					// slow client
					h.remove(client)
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for _, clients := range h.clients {
				for client := range clients {
					h.remove(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.ParentID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.ParentID)
	}
}
