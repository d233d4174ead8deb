// Package stream broadcasts read-only tank frames to websocket viewers.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"aquarium/internal/aquarium"
	"aquarium/internal/core"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendBufferSize = 8
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:    1024,
	WriteBufferSize:   16384,
	EnableCompression: true,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the envelope written to every viewer.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// WelcomePayload is sent once after a viewer connects.
type WelcomePayload struct {
	ID string `json:"id"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected viewers and fans frames out to them. Viewers never
// send state back; anything they write is discarded.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*client
	dropped int
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

// ServeHTTP upgrades the request and registers the viewer.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade failed: %v", err)
		return
	}
	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBufferSize)}

	welcome, err := json.Marshal(Message{Type: "welcome", Payload: WelcomePayload{ID: c.id}})
	if err != nil {
		log.Printf("stream: encode welcome: %v", err)
		conn.Close()
		return
	}
	c.send <- welcome

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	log.Printf("stream: viewer %s connected from %s", c.id, r.RemoteAddr)

	go h.writePump(c)
	go h.readPump(c)
}

// Clients reports the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped counts frames skipped because a viewer's buffer was full.
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Broadcast encodes f once and queues it for every viewer. Slow viewers skip
// the frame instead of stalling the simulation.
func (h *Hub) Broadcast(f aquarium.Frame) error {
	data, err := json.Marshal(Message{Type: "frame", Payload: f})
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Index, err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
	return nil
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		close(c.send)
		delete(h.clients, id)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	log.Printf("stream: viewer %s disconnected", c.id)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("stream: viewer %s read error: %v", c.id, err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// Run steps tank at tps and broadcasts every frame until ctx is done. Steps
// follow wall time so a late tick does not slow the tank down. The tank is
// owned by this goroutine for the duration of the call.
func Run(ctx context.Context, tank *aquarium.Tank, hub *Hub, tps int) error {
	if tps <= 0 {
		return errors.New("stream: tps must be positive")
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	nominal := 1 / float64(tps)
	wall := core.NewClock()
	wall.Tick(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := wall.Tick(now)
			if dt == 0 {
				dt = nominal
			}
			tank.Step(dt)
			if err := hub.Broadcast(tank.Frame()); err != nil {
				return err
			}
		}
	}
}
