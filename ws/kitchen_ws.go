package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/itsmelouis/kiosko/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub pushes placed orders to every connected kitchen display.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// OrderEvent is what a kitchen display receives when an order lands.
type OrderEvent struct {
	Type        string             `json:"type"`
	OrderID     uint               `json:"orderId"`
	TableNumber string             `json:"tableNumber"`
	Total       float64            `json:"total"`
	Items       []entity.OrderItem `json:"items"`
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderPlaced implements the order service's notifier. Non-blocking: a slow
// display never stalls checkout.
func (h *KitchenHub) OrderPlaced(o *entity.Order) {
	ev := OrderEvent{
		Type:        "order.placed",
		OrderID:     o.ID,
		TableNumber: o.TableNumber,
		Total:       o.TotalAmount,
		Items:       o.Items,
	}
	select {
	case h.broadcast <- ev:
	default:
		log.Println("ws: kitchen feed full, dropping event")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen (staff token required by middleware)
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// reader loop: we only care about disconnects
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
