package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/watcher"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 30 * time.Second

	// Reload messages queued per client before new ones are dropped.
	sendBuffer = 8
)

// ReloadMessage is sent to browsers when watched assets change.
type ReloadMessage struct {
	Type      string    `json:"type"`
	Paths     []string  `json:"paths,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type reloadClient struct {
	conn *websocket.Conn
	send chan []byte
}

// reloadHub fans reload notifications out to connected browsers.
type reloadHub struct {
	logger  logging.Logger
	mu      sync.Mutex
	clients map[*reloadClient]struct{}
	closed  bool
	wg      sync.WaitGroup
}

func newReloadHub(logger logging.Logger) *reloadHub {
	return &reloadHub{
		logger:  logger.WithComponent("livereload"),
		clients: make(map[*reloadClient]struct{}),
	}
}

// ServeHTTP upgrades the request and holds the connection until the browser
// leaves or the hub closes. Cross-origin upgrades are refused by Accept.
func (h *reloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Debug(r.Context(), "websocket upgrade refused", "error", err.Error())

		return
	}
	conn.SetReadLimit(512)

	c := &reloadClient{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.add(c) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")

		return
	}
	defer h.wg.Done()
	defer h.remove(c)

	// Nothing is read from browsers; CloseRead keeps pings answered and
	// cancels ctx once the peer goes away.
	ctx := c.conn.CloseRead(context.Background())
	h.writeLoop(ctx, c)
}

func (h *reloadHub) add(c *reloadClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	h.wg.Add(1)

	return true
}

func (h *reloadHub) remove(c *reloadClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *reloadHub) writeLoop(ctx context.Context, c *reloadClient) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.conn.Close(websocket.StatusNormalClosure, "")

			return
		case msg, ok := <-c.send:
			if !ok {
				c.conn.Close(websocket.StatusGoingAway, "server shutting down")

				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				h.logger.Debug(ctx, "websocket write failed", "error", err.Error())
				c.conn.CloseNow()

				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				c.conn.CloseNow()

				return
			}
		}
	}
}

// Len returns the number of connected browsers.
func (h *reloadHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Broadcast queues a reload for every client and returns how many received
// it. A client whose queue is full already has a reload pending.
func (h *reloadHub) Broadcast(paths []string) int {
	msg, err := json.Marshal(ReloadMessage{Type: "reload", Paths: paths, Timestamp: time.Now().UTC()})
	if err != nil {
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for c := range h.clients {
		select {
		case c.send <- msg:
			sent++
		default:
		}
	}

	return sent
}

// Close disconnects every client and waits for their handlers to return.
func (h *reloadHub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return
	}
	h.closed = true
	for c := range h.clients {
		close(c.send)
	}
	clear(h.clients)
	h.mu.Unlock()

	h.wg.Wait()
}

// handleChanges is the watcher callback: one reload per debounced batch.
func (h *reloadHub) handleChanges(events []watcher.ChangeEvent) error {
	paths := make([]string, 0, len(events))
	for _, e := range events {
		paths = append(paths, e.Path)
	}

	n := h.Broadcast(paths)
	h.logger.Info(context.Background(), "assets changed, reload sent", "files", len(paths), "clients", n)

	return nil
}
