package ws

import (
	"encoding/json"
	"sync"
	"time"

	"ContactBook/pkg/zlog"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	if c == nil || c.clientID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[c.clientID]
	if set == nil {
		set = make(map[*Client]struct{})
		h.clients[c.clientID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	if c == nil || c.clientID == "" {
		return
	}
	h.mu.Lock()
	set := h.clients[c.clientID]
	if set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.clientID)
		}
	}
	h.mu.Unlock()
	c.Close()
}

// Count 当前连接数
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// Broadcast 发给所有连接，返回成功入队的连接数；发送队列满的连接会被踢掉
func (h *Hub) Broadcast(payload []byte) int {
	if len(payload) == 0 {
		return 0
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for _, set := range h.clients {
		for c := range set {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	sent := 0
	var slow []*Client
	for _, c := range targets {
		if c.enqueue(payload) {
			sent++
			continue
		}
		slow = append(slow, c)
	}
	for _, c := range slow {
		zlog.Warn("ws client too slow, dropping", zap.String("client_id", c.clientID))
		h.Unregister(c)
	}
	return sent
}

func (h *Hub) BroadcastJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(b)
	return nil
}

type Client struct {
	clientID string
	conn     *websocket.Conn
	send     chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(clientID string, conn *websocket.Conn) *Client {
	return &Client{
		clientID: clientID,
		conn:     conn,
		send:     make(chan []byte, 64),
	}
}

func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

const (
	writeWait  = 10 * time.Second
	pingPeriod = 50 * time.Second
)

// WritePump 把发送队列写到连接上，并定期发 ping 维持读超时
func (c *Client) WritePump() {
	if c.conn == nil {
		return
	}
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				zlog.Error("ws write failed", zap.Error(err), zap.String("client_id", c.clientID))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
