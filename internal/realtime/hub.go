package realtime

import (
	"context"

	"github.com/rs/zerolog"
)

// Hub owns every websocket client and routes activity events to the sessions
// of the user they belong to. All state is touched by the Run goroutine only.
type Hub struct {
	// userID -> open sessions
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan userMsg
	// closed when Run returns
	done   chan struct{}
	logger zerolog.Logger
}

type userMsg struct {
	userID  string
	payload []byte
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan userMsg, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Register adds c to the hub. Once the hub has stopped, c's send channel is
// closed instead so its write pump exits.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

// Unregister is a no-op once the hub has stopped; Run already closed every
// session.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues payload for every session of userID. After the hub has
// stopped the payload is dropped.
func (h *Hub) Broadcast(userID string, payload []byte) {
	select {
	case h.broadcast <- userMsg{userID: userID, payload: payload}:
	case <-h.done:
	}
}

// Run serves the hub until ctx is done, then closes every session.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, sessions := range h.clients {
				for client := range sessions {
					close(client.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			return

		case client := <-h.register:
			sessions, ok := h.clients[client.userID]
			if !ok {
				sessions = make(map[*Client]bool)
				h.clients[client.userID] = sessions
			}
			sessions[client] = true
			h.logger.Debug().Str("userId", client.userID).Int("sessions", len(sessions)).Msg("client registered")

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.broadcast:
			for client := range h.clients[msg.userID] {
				select {
				case client.send <- msg.payload:
				default:
					// slow consumer
					h.logger.Warn().Str("userId", msg.userID).Msg("dropping client with full buffer")
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	sessions, ok := h.clients[client.userID]
	if !ok || !sessions[client] {
		return
	}
	delete(sessions, client)
	close(client.send)
	if len(sessions) == 0 {
		delete(h.clients, client.userID)
	}
	h.logger.Debug().Str("userId", client.userID).Int("sessions", len(sessions)).Msg("client unregistered")
}
