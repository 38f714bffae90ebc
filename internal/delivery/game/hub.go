package game

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	domain "quadratum/internal/domain/game"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StateSource gives the current game snapshot.
type StateSource interface {
	State() domain.State
}

type snapshotMessage struct {
	Type  string       `json:"type"`
	State domain.State `json:"state"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(deadline time.Time, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

// Hub streams game events to websocket clients.
type Hub struct {
	log   *zap.SugaredLogger
	state StateSource

	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub(log *zap.SugaredLogger, state StateSource) *Hub {
	return &Hub{
		log:     log,
		state:   state,
		clients: make(map[*client]struct{}),
	}
}

// ServeWS upgrades the request and sends the current snapshot followed by every
// published event until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("websocket upgrade: %v", err)
		return
	}

	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.log.Infof("websocket client connected: %s", r.RemoteAddr)

	snapshot := snapshotMessage{Type: "snapshot", State: h.state.State()}
	if err := c.writeJSON(time.Now().Add(writeWait), snapshot); err != nil {
		h.log.Errorf("send snapshot: %v", err)
		h.drop(c)
		return
	}

	// Clients only listen; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(c)
	h.log.Infof("websocket client disconnected: %s", r.RemoteAddr)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		_ = c.conn.Close()
	}
}

// Publish sends event to every connected client. Clients that fail are dropped.
func (h *Hub) Publish(ctx context.Context, event domain.Event) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(writeWait)
	}

	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(deadline, event); err != nil {
			h.log.Errorf("send event %s to %s: %v", event.Type, c.conn.RemoteAddr(), err)
			h.drop(c)
		}
	}
	return nil
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(writeWait))
		c.mu.Unlock()
		_ = c.conn.Close()
	}
}
