package websocket

import (
	"sync"
	"time"

	"dealership-backend/db/models"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeLeadAssigned  MessageType = "LEAD_ASSIGNED"
	MessageTypeLeadStatus    MessageType = "LEAD_STATUS_CHANGED"
	MessageTypeBookingUpdate MessageType = "BOOKING_UPDATED"
	MessageTypeError         MessageType = "ERROR"
)

type WebSocketMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type Client struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Conn   *websocket.Conn
	Hub    *Hub
	Send   chan WebSocketMessage
}

// Hub fans realtime notifications out to connected staff clients. A
// user may hold several connections (showroom terminal plus phone);
// user-targeted sends reach all of them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan WebSocketMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan WebSocketMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.broadcastToAll(message)
		}
	}
}

// Broadcast sends a message to every connected client.
func (h *Hub) Broadcast(message WebSocketMessage) {
	h.broadcast <- message
}

// SendToUser delivers a message to every live connection a user holds.
// A client with a full send buffer is dropped; it will reconnect.
func (h *Hub) SendToUser(userID uuid.UUID, message WebSocketMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if client.UserID != userID {
			continue
		}
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) broadcastToAll(message WebSocketMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// NotifyAssignment pushes a lead-assignment notification to the
// assigned DSE. Satisfies the lifecycle service's notifier; delivery is
// best-effort.
func (h *Hub) NotifyAssignment(lead *models.Lead) {
	if lead == nil || lead.AssigneeID == nil {
		return
	}

	h.SendToUser(*lead.AssigneeID, WebSocketMessage{
		Type: MessageTypeLeadAssigned,
		Payload: map[string]interface{}{
			"lead_id":       lead.ID.String(),
			"customer_name": lead.CustomerName,
			"model_name":    lead.ModelName,
			"status":        lead.Status,
		},
		Timestamp: time.Now(),
	})
}

// NotifyStatusChange tells every connected client a lead moved; the
// pipeline board view consumes this to refresh live.
func (h *Hub) NotifyStatusChange(lead *models.Lead) {
	if lead == nil {
		return
	}

	h.Broadcast(WebSocketMessage{
		Type: MessageTypeLeadStatus,
		Payload: map[string]interface{}{
			"lead_id": lead.ID.String(),
			"status":  lead.Status,
		},
		Timestamp: time.Now(),
	})
}

// NotifyBookingUpdate broadcasts a service-booking status change to the
// workshop board.
func (h *Hub) NotifyBookingUpdate(booking *models.ServiceBooking) {
	if booking == nil {
		return
	}

	h.Broadcast(WebSocketMessage{
		Type: MessageTypeBookingUpdate,
		Payload: map[string]interface{}{
			"booking_id":     booking.ID.String(),
			"status":         booking.Status,
			"vehicle_reg_no": booking.VehicleRegNo,
		},
		Timestamp: time.Now(),
	})
}
