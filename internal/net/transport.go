package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// peer wraps one websocket connection. Gorilla conns do not allow concurrent
// writers, so every write goes through the peer's own lock.
type peer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *peer) send(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub is run by the host: it accepts websocket clients, delivers their
// messages to OnMessage and broadcasts outgoing messages to everyone (minus
// an optional sender, so the host can relay without echoing).
type Hub struct {
	peers    map[*peer]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// OnMessage is called from the reader goroutine of each client with the
	// raw frame and an opaque sender token to pass back to Broadcast.
	OnMessage func(data []byte, sender any)
	// OnConnect is called after a client finishes the handshake, before any
	// of its messages are delivered. Used to sync board history to late joiners.
	OnConnect func(sender any)
}

func NewHub() *Hub {
	return &Hub{
		peers: make(map[*peer]bool),
		upgrader: websocket.Upgrader{
			// All peers are on the local network, not browsers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ListenAndServe runs the websocket endpoint. It blocks until the listener
// fails.
func (h *Hub) ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWS)
	log.Printf("Hub listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	p := &peer{conn: conn}

	h.mu.Lock()
	h.peers[p] = true
	h.mu.Unlock()
	log.Printf("Client connected from %s", conn.RemoteAddr())

	if h.OnConnect != nil {
		h.OnConnect(p)
	}
	go h.readLoop(p)
}

func (h *Hub) readLoop(p *peer) {
	defer func() {
		h.mu.Lock()
		delete(h.peers, p)
		h.mu.Unlock()
		p.conn.Close()
		log.Printf("Client %s disconnected", p.conn.RemoteAddr())
	}()

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}
		if h.OnMessage != nil {
			h.OnMessage(data, p)
		}
	}
}

// Broadcast sends data to every connected client except the one identified by
// exclude (pass nil to reach everyone).
func (h *Hub) Broadcast(data []byte, exclude any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for p := range h.peers {
		if p == exclude {
			continue
		}
		if err := p.send(data); err != nil {
			log.Printf("Error sending to %s: %v", p.conn.RemoteAddr(), err)
		}
	}
}

// SendTo delivers data to a single client identified by a sender token.
func (h *Hub) SendTo(target any, data []byte) {
	if p, ok := target.(*peer); ok {
		if err := p.send(data); err != nil {
			log.Printf("Error sending to %s: %v", p.conn.RemoteAddr(), err)
		}
	}
}

// Client is the board-joining side of the websocket transport.
type Client struct {
	p *peer
}

// Dial connects to a host's hub at addr (host:port).
func Dial(addr string) (*Client, error) {
	url := fmt.Sprintf("ws://%s/ws", addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to reach host at %s: %w", addr, err)
	}
	return &Client{p: &peer{conn: conn}}, nil
}

// Send transmits one frame to the host.
func (c *Client) Send(data []byte) error {
	return c.p.send(data)
}

// LocalAddr identifies this client on the network (used as its owner ID).
func (c *Client) LocalAddr() string {
	return c.p.conn.LocalAddr().String()
}

// ReadLoop delivers incoming frames to handle until the connection drops,
// then returns the read error.
func (c *Client) ReadLoop(handle func(data []byte)) error {
	defer c.p.conn.Close()
	for {
		_, data, err := c.p.conn.ReadMessage()
		if err != nil {
			return err
		}
		handle(data)
	}
}
