// Package ws broadcasts booking events to clients watching a flight over
// WebSocket.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/partnersinbahamas/airport-api/internal/service"
)

// message is the wire format sent to subscribers when a seat is booked.
type message struct {
	Type      string    `json:"type"`
	FlightID  uuid.UUID `json:"flight"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
	OrderID   uuid.UUID `json:"order"`
	Timestamp int64     `json:"timestamp"`
}

const messageTypeSeatBooked = "seat_booked"

type client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	flightID uuid.UUID
}

// Hub manages WebSocket subscribers per flight and fans booking events out
// to them. It implements service.Publisher.
type Hub struct {
	clients    map[uuid.UUID]map[*client]bool
	register   chan *client
	unregister chan *client
	events     chan service.BookingEvent
	mu         sync.RWMutex
}

// NewHub creates a hub. Run must be started for events to flow.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan service.BookingEvent, 256),
	}
}

// Run is the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.flightID] == nil {
				h.clients[c.flightID] = make(map[*client]bool)
			}
			h.clients[c.flightID][c] = true
			log.Printf("ws: client subscribed to flight %s (total: %d)", c.flightID, len(h.clients[c.flightID]))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[c.flightID]; ok {
				if _, ok := clients[c]; ok {
					delete(clients, c)
					close(c.send)
					if len(clients) == 0 {
						delete(h.clients, c.flightID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.events:
			data, err := json.Marshal(message{
				Type:      messageTypeSeatBooked,
				FlightID:  event.FlightID,
				Row:       event.Row,
				Seat:      event.Seat,
				OrderID:   event.OrderID,
				Timestamp: time.Now().UnixMilli(),
			})
			if err != nil {
				log.Printf("ws: failed to marshal event: %v", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[event.FlightID]
			h.mu.RUnlock()

			for c := range clients {
				select {
				case c.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[event.FlightID], c)
					close(c.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// PublishBooking queues a booking event for broadcast. A full queue drops the
// event rather than blocking the booking path.
func (h *Hub) PublishBooking(event service.BookingEvent) {
	select {
	case h.events <- event:
	default:
		log.Printf("ws: event queue full, dropping booking event for flight %s", event.FlightID)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeFlight handles GET /api/flights/{id}/ws and streams booking events
// for that flight.
func (h *Hub) ServeFlight(w http.ResponseWriter, r *http.Request) {
	flightID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid flight id", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, 64), flightID: flightID}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
