package ws

import (
	"encoding/json"
	"sync"

	"go-erp-admin/internal/service"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub fans change events out to every connected console
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.Mutex
}

var _ service.Notifier = (*Hub)(nil)

// broadcastBuffer is how many events may wait for Run before Notify drops them
const broadcastBuffer = 256

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			n := len(h.Clients)
			h.mutex.Unlock()
			log.WithField("clients", n).Info("ws client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					log.WithError(err).Debug("ws write failed, dropping client")
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Stop closes every client and ends Run
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// ClientCount reports the connected clients
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Notify queues event for broadcast without blocking the caller. Events are
// delivered in the order they were queued; when the queue is full the event
// is dropped.
func (h *Hub) Notify(event service.Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Warn("ws event not encodable")
		return
	}
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.Broadcast <- msg:
	default:
		log.WithFields(log.Fields{"action": event.Action, "entity": event.Entity}).Warn("ws queue full, event dropped")
	}
}

// Serve registers conn and keeps it until the client goes away
func (h *Hub) Serve(conn *websocket.Conn) {
	select {
	case h.Register <- conn:
	case <-h.done:
		conn.Close()
		return
	}
	defer func() {
		select {
		case h.Unregister <- conn:
		case <-h.done:
		}
	}()

	for {
		// Keep alive loop
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
