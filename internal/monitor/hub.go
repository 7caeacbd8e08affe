// Package monitor serves a WebSocket endpoint broadcasting demodulated
// (I,Q) points for a browser-based constellation scope, CLI glue layered
// above the demodulation pipeline.
package monitor

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Point is one demodulated (I,Q) sample, broadcast as JSON to every
// connected client.
type Point struct {
	I float64 `json:"i"`
	Q float64 `json:"q"`
}

// Hub tracks connected WebSocket clients and fans Points out to all of
// them.
type Hub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewHub builds an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// HandleWS upgrades the request to a WebSocket and registers the
// connection with the hub until it disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Drain and discard whatever the client sends; we only care about
	// noticing when it disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Broadcast sends p as JSON to every connected client, dropping any
// client whose write fails.
func (h *Hub) Broadcast(p Point) {
	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("monitor: marshal error: %v", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(conn)
		}
	}
}

// Serve registers the hub's WebSocket handler at /ws on its own
// http.ServeMux and listens on addr. It blocks until the server errors.
func Serve(addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.HandleWS)
	log.Printf("monitor: serving constellation scope on ws://%s/ws", addr)
	return http.ListenAndServe(addr, mux)
}
