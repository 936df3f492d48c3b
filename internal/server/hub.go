package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/rayyanquantum/rayui/internal/logging"
	"github.com/rayyanquantum/rayui/internal/validation"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 54 * time.Second

	// Messages the browser sends are ignored; keep them small.
	maxMessageSize = 512

	sendBuffer = 16
)

// UpdateMessage is the JSON message pushed to live reload clients.
type UpdateMessage struct {
	Type      string    `json:"type"`
	Target    string    `json:"target,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks live reload connections and fans out broadcast messages.
type Hub struct {
	allowedOrigins []string
	logger         logging.Logger
	metrics        *Metrics

	clients    map[*client]struct{}
	mu         sync.RWMutex
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	doneOnce   sync.Once
}

// NewHub creates a hub that accepts connections from allowedOrigins.
func NewHub(allowedOrigins []string, metrics *Metrics, logger logging.Logger) *Hub {
	return &Hub{
		allowedOrigins: allowedOrigins,
		logger:         logger.WithComponent("websocket"),
		metrics:        metrics,
		clients:        make(map[*client]struct{}),
		register:       make(chan *client),
		unregister:     make(chan *client),
		broadcast:      make(chan []byte, sendBuffer),
		done:           make(chan struct{}),
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer h.doneOnce.Do(func() { close(h.done) })

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.metrics.websocketClients.Set(0)
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			count := len(h.clients)
			h.mu.Unlock()
			h.metrics.websocketClients.Set(float64(count))
			h.logger.Debug(ctx, "Client connected", "clients", count)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.metrics.websocketClients.Set(float64(count))
			h.logger.Debug(ctx, "Client disconnected", "clients", count)

		case message := <-h.broadcast:
			var slow []*client
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()

			if len(slow) > 0 {
				h.mu.Lock()
				for _, c := range slow {
					if _, ok := h.clients[c]; ok {
						delete(h.clients, c)
						close(c.send)
					}
				}
				h.mu.Unlock()
			}
		}
	}
}

// Broadcast queues msg for every connected client. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) Broadcast(ctx context.Context, msg UpdateMessage) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error(ctx, err, "Failed to marshal update message")
		return
	}

	select {
	case h.broadcast <- data:
		h.metrics.broadcastsTotal.Inc()
	default:
		h.logger.Warn(ctx, nil, "Broadcast queue full, dropping message", "type", msg.Type)
	}
}

// ServeHTTP upgrades the request and pumps messages until the connection or
// the hub closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := validation.ValidateOrigin(r.Header.Get("Origin"), h.allowedOrigins); err != nil {
		h.logger.Warn(ctx, err, "Rejected websocket origin", "origin", r.Header.Get("Origin"))
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originHosts(h.allowedOrigins),
	})
	if err != nil {
		h.logger.Warn(ctx, err, "WebSocket upgrade failed")
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxMessageSize)

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}()

	h.writePump(conn.CloseRead(ctx), c)
}

func (h *Hub) writePump(ctx context.Context, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case message, ok := <-c.send:
			if !ok {
				c.conn.Close(websocket.StatusGoingAway, "")
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				h.logger.Debug(ctx, "WebSocket write failed", "error", err.Error())
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

// originHosts turns configured origins into the host patterns the websocket
// library matches against.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}
		hosts = append(hosts, o)
	}
	return hosts
}
