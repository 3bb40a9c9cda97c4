package transport

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"

	"bithacks/internal/config"
	applog "bithacks/internal/log"

	"github.com/gorilla/websocket"
)

// client wraps a connection with a write lock; gorilla connections allow
// one concurrent writer only, and both replies and broadcasts write.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// WebSocketTransport serves evaluation requests on /ws and implements the
// Transport interface by broadcasting to every connected client.
type WebSocketTransport struct {
	addr       string
	maxClients int
	readLimit  int64
	evaluator  Evaluator

	upgrader  websocket.Upgrader
	clients   map[*client]bool
	pending   int // slots reserved by upgrades in progress
	clientsMu sync.Mutex
	broadcast chan any
	done      chan struct{}
	closeOnce sync.Once

	server   *http.Server
	listener net.Listener
}

// NewWebSocketTransport creates a transport for the given server settings
// and starts its broadcast loop. Call Start to listen, or mount Handler on
// an existing server.
func NewWebSocketTransport(cfg config.ServerConfig, evaluator Evaluator) *WebSocketTransport {
	wst := &WebSocketTransport{
		addr:       cfg.Address,
		maxClients: cfg.MaxClients,
		readLimit:  cfg.ReadLimit,
		evaluator:  evaluator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local tool; any origin may connect
			},
		},
		clients:   make(map[*client]bool),
		broadcast: make(chan any, 256),
		done:      make(chan struct{}),
	}

	go wst.handleBroadcasts()
	return wst
}

// Handler returns the HTTP handler serving /ws.
func (wst *WebSocketTransport) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wst.handleWebSocket)
	return mux
}

// Start listens on the configured address and serves in the background.
func (wst *WebSocketTransport) Start() error {
	ln, err := net.Listen("tcp", wst.addr)
	if err != nil {
		return err
	}
	wst.listener = ln
	wst.server = &http.Server{Handler: wst.Handler()}

	go func() {
		applog.Infof("WebSocketTransport: serving on ws://%s/ws", ln.Addr())
		if err := wst.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Errorf("WebSocketTransport: server error: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address once started, else the configured one.
func (wst *WebSocketTransport) Addr() string {
	if wst.listener != nil {
		return wst.listener.Addr().String()
	}
	return wst.addr
}

// ClientCount returns the number of connected clients.
func (wst *WebSocketTransport) ClientCount() int {
	wst.clientsMu.Lock()
	defer wst.clientsMu.Unlock()
	return len(wst.clients)
}

// handleWebSocket upgrades HTTP connections to WebSocket
func (wst *WebSocketTransport) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !wst.reserveSlot() {
		http.Error(w, "too many clients", http.StatusServiceUnavailable)
		return
	}

	conn, err := wst.upgrader.Upgrade(w, r, nil)
	if err != nil {
		wst.releaseSlot()
		applog.Warnf("WebSocketTransport: upgrade error: %v", err)
		return
	}
	conn.SetReadLimit(wst.readLimit)

	c := &client{conn: conn}
	wst.clientsMu.Lock()
	wst.pending--
	wst.clients[c] = true
	count := len(wst.clients)
	wst.clientsMu.Unlock()
	applog.Debugf("WebSocketTransport: client connected, total: %d", count)

	go wst.serveClient(c)
}

// reserveSlot claims room for one connection before the upgrade, so
// concurrent handshakes cannot push the count past maxClients.
func (wst *WebSocketTransport) reserveSlot() bool {
	wst.clientsMu.Lock()
	defer wst.clientsMu.Unlock()
	if len(wst.clients)+wst.pending >= wst.maxClients {
		return false
	}
	wst.pending++
	return true
}

func (wst *WebSocketTransport) releaseSlot() {
	wst.clientsMu.Lock()
	wst.pending--
	wst.clientsMu.Unlock()
}

// serveClient answers requests until the client goes away.
func (wst *WebSocketTransport) serveClient(c *client) {
	defer wst.removeClient(c)

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				applog.Debugf("WebSocketTransport: read error: %v", err)
			}
			return
		}

		var resp Response
		var req Request
		if err := json.Unmarshal(msg, &req); err != nil {
			// Bad JSON is answered, the connection stays open.
			resp = Response{Error: "malformed request: " + err.Error()}
		} else {
			resp = wst.evaluator.Handle(req)
		}
		if err := c.writeJSON(resp); err != nil {
			applog.Warnf("WebSocketTransport: error replying to client: %v", err)
			return
		}
	}
}

func (wst *WebSocketTransport) removeClient(c *client) {
	wst.clientsMu.Lock()
	_, present := wst.clients[c]
	delete(wst.clients, c)
	count := len(wst.clients)
	wst.clientsMu.Unlock()

	if present {
		c.conn.Close()
		applog.Debugf("WebSocketTransport: client disconnected, total: %d", count)
	}
}

// handleBroadcasts sends messages to all connected clients
func (wst *WebSocketTransport) handleBroadcasts() {
	for {
		select {
		case <-wst.done:
			return
		case data := <-wst.broadcast:
			wst.clientsMu.Lock()
			targets := make([]*client, 0, len(wst.clients))
			for c := range wst.clients {
				targets = append(targets, c)
			}
			wst.clientsMu.Unlock()

			for _, c := range targets {
				if err := c.writeJSON(data); err != nil {
					applog.Warnf("WebSocketTransport: error sending to client: %v", err)
					wst.removeClient(c)
				}
			}
		}
	}
}

// Send broadcasts data to all connected WebSocket clients. Messages are
// dropped when the queue is full.
func (wst *WebSocketTransport) Send(data any) error {
	select {
	case <-wst.done:
		return ErrClosed
	default:
	}

	select {
	case wst.broadcast <- data:
	default:
		applog.Debugf("WebSocketTransport: broadcast queue full, dropping message")
	}
	return nil
}

// Close shuts down the WebSocket server and disconnects every client.
func (wst *WebSocketTransport) Close() error {
	var err error
	wst.closeOnce.Do(func() {
		applog.Infof("WebSocketTransport: closing server")
		close(wst.done)

		wst.clientsMu.Lock()
		for c := range wst.clients {
			c.conn.Close()
		}
		wst.clients = make(map[*client]bool)
		wst.clientsMu.Unlock()

		if wst.server != nil {
			err = wst.server.Close()
		}
	})
	return err
}

// Ensure WebSocketTransport satisfies the interface
var _ Transport = (*WebSocketTransport)(nil)
