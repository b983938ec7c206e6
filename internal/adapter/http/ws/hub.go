package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Event notifies connected dashboards that a resource changed so lists can
// refresh without polling.
type Event struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	ID       string `json:"id,omitempty"`
}

// conn wraps a websocket connection with a write mutex; gorilla connections
// do not allow concurrent writers.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteMessage(messageType, data)
}

// Hub tracks connected clients and fans change events out to them. A failed
// write drops the client.
type Hub struct {
	mu    sync.RWMutex
	conns map[*conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*conn]struct{})}
}

func (h *Hub) add(c *conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	log.Printf("[notify][ws] client connected total=%d", n)
}

func (h *Hub) remove(c *conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	_ = c.ws.Close()
}

// Notify broadcasts a change event to every connected client.
func (h *Hub) Notify(resource, action, id string) {
	data, err := json.Marshal(Event{Resource: resource, Action: action, ID: id})
	if err != nil {
		log.Printf("[notify][ws] marshal failed err=%v", err)
		return
	}

	h.mu.RLock()
	conns := make([]*conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.write(websocket.TextMessage, data); err != nil {
			h.remove(c)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades the request and parks the connection on the hub until the
// client goes away. Liveness is kept with pings on a fixed interval.
func (h *Hub) Handler(c *gin.Context) {
	socket, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[notify][ws] upgrade failed err=%v", err)
		return
	}

	cn := &conn{ws: socket}
	h.add(cn)
	defer func() {
		h.remove(cn)
		log.Printf("[notify][ws] client disconnected")
	}()

	_ = socket.SetReadDeadline(time.Now().Add(pongTimeout))
	socket.SetPongHandler(func(string) error {
		return socket.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				cn.mu.Lock()
				err := socket.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
				cn.mu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := socket.ReadMessage(); err != nil {
			return
		}
	}
}
