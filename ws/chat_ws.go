package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatHub fans chat messages out to everyone connected to an order's
// room. One room per order.
type ChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> connections
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	service    *services.ChatService
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
	Role    string
}

type broadcastMessage struct {
	OrderID uint
	Message *entity.Message
}

func NewChatHub(service *services.ChatService) *ChatHub {
	h := &ChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		service:    service,
	}
	service.SetSink(h)
	return h
}

// Broadcast implements services.MessageSink so simulated replies reach
// the room the same way real messages do.
func (h *ChatHub) Broadcast(orderID uint, msg *entity.Message) {
	h.broadcast <- broadcastMessage{OrderID: orderID, Message: msg}
}

func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OrderID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves /ws/orders/:id/chat.
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	orderID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	orderID := uint(orderID64)

	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	ok, err := h.service.CanAccess(userID, role, orderID)
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID, UserID: userID, Role: role}
	h.register <- sub

	go h.listenMessages(sub)
}

func (h *ChatHub) listenMessages(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		var payload struct {
			Body string `json:"body"`
		}
		if err := sub.Conn.ReadJSON(&payload); err != nil {
			return
		}
		if payload.Body == "" {
			continue
		}

		// sender identity comes from the token, never from the payload
		msg, err := h.service.Send(sub.OrderID, sub.UserID, sub.Role, payload.Body)
		if err != nil {
			log.Printf("save message error: %v", err)
			continue
		}
		h.broadcast <- broadcastMessage{OrderID: sub.OrderID, Message: msg}
	}
}
