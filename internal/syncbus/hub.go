package syncbus

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

var hubUpgrader = websocket.Upgrader{
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
	// Local-only hub; peers are other windows of the same app on localhost.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub is the broadcast relay hosted by the owner process. Each websocket
// joins exactly one named channel; a published envelope reaches every other
// member of that channel and nobody else.
type Hub struct {
	logger *log.Logger

	mu       sync.Mutex
	channels map[string]map[*websocket.Conn]bool
	server   *http.Server
	addr     string
}

// NewHub creates an idle hub
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		logger:   logger,
		channels: make(map[string]map[*websocket.Conn]bool),
	}
}

// Start begins listening on 127.0.0.1:port. Port 0 picks a free port; the
// chosen address is available from Addr for the discovery file.
func (h *Hub) Start(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return fmt.Errorf("sync hub listen: %w", err)
	}
	h.addr = ln.Addr().String()

	mux := http.NewServeMux()
	mux.HandleFunc("/channel/", h.handleChannel)
	h.server = &http.Server{Handler: mux}

	go func() {
		if err := h.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			h.logger.Printf("sync hub stopped: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, empty before Start
func (h *Hub) Addr() string {
	return h.addr
}

// Close shuts the hub down and drops every member connection
func (h *Hub) Close() error {
	h.mu.Lock()
	for _, members := range h.channels {
		for conn := range members {
			conn.Close()
		}
	}
	h.channels = make(map[string]map[*websocket.Conn]bool)
	h.mu.Unlock()

	if h.server != nil {
		return h.server.Close()
	}
	return nil
}

func (h *Hub) handleChannel(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/channel/")
	if name == "" {
		http.Error(w, "missing channel name", http.StatusBadRequest)
		return
	}

	conn, err := hubUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.join(name, conn)
	defer h.leave(name, conn)

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		h.broadcast(name, conn, env)
	}
}

func (h *Hub) join(name string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[name] == nil {
		h.channels[name] = make(map[*websocket.Conn]bool)
	}
	h.channels[name][conn] = true
	h.logger.Printf("sync: peer joined channel %s (%d members)", name, len(h.channels[name]))
}

func (h *Hub) leave(name string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.channels[name], conn)
	conn.Close()
}

// broadcast relays an envelope to every channel member except the sender.
// Write failures drop the peer silently; the protocol has no delivery
// guarantee to uphold.
func (h *Hub) broadcast(name string, from *websocket.Conn, env Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.channels[name] {
		if conn == from {
			continue
		}
		if err := conn.WriteJSON(env); err != nil {
			delete(h.channels[name], conn)
			conn.Close()
		}
	}
}
