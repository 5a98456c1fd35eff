package ws

import (
	"log"
	"sync"

	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHub is the outbound notification stream. Publishing never
// blocks: a subscriber that cannot keep up loses events, which is fine
// because nothing in the system depends on their delivery.
type NotifyHub struct {
	mu      sync.Mutex
	clients map[*notifyClient]bool
}

type notifyClient struct {
	conn *websocket.Conn
	send chan services.Event
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{clients: make(map[*notifyClient]bool)}
}

// Publish implements services.Notifier.
func (h *NotifyHub) Publish(ev services.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- ev:
		default:
			// slow consumer, drop the event
		}
	}
}

// HandleWebSocket serves /ws/notifications.
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := &notifyClient{conn: conn, send: make(chan services.Event, 16)}
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	go h.writeLoop(client)
	go h.readLoop(client)
}

func (h *NotifyHub) writeLoop(client *notifyClient) {
	for ev := range client.send {
		if err := client.conn.WriteJSON(ev); err != nil {
			h.drop(client)
			return
		}
	}
}

// readLoop only watches for the client going away.
func (h *NotifyHub) readLoop(client *notifyClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			h.drop(client)
			return
		}
	}
}

func (h *NotifyHub) drop(client *notifyClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		client.conn.Close()
	}
}
