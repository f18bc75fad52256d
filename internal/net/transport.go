package net

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"SketchBoard/internal/export"
	"SketchBoard/internal/state"
)

// MessagePaths is the type of a full document snapshot message.
const MessagePaths = "paths"

// Message is what viewers receive over the WebSocket.
type Message struct {
	Type     string         `json:"type"`
	Host     string         `json:"host"`
	Revision uint64         `json:"revision"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Paths    []state.Stroke `json:"paths"`
}

const (
	peerQueue    = 8
	writeTimeout = 5 * time.Second
)

type peer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans document snapshots out to WebSocket viewers. Publish never blocks,
// so it can be called straight from a change callback.
type Hub struct {
	ID string

	width, height float64
	updates       chan state.Change
	upgrader      websocket.Upgrader

	mu     sync.RWMutex
	peers  map[*peer]bool
	latest Message
}

// NewHub creates a hub for a canvas of the given size.
func NewHub(width, height float64) *Hub {
	id := uuid.NewString()
	return &Hub{
		ID:      id,
		width:   width,
		height:  height,
		updates: make(chan state.Change, 1),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers:  make(map[*peer]bool),
		latest: Message{Type: MessagePaths, Host: id, Width: width, Height: height, Paths: []state.Stroke{}},
	}
}

// Publish queues a snapshot for broadcast. When a snapshot is still pending it
// is replaced, so viewers may skip revisions but always converge on the latest.
func (h *Hub) Publish(c state.Change) {
	for {
		select {
		case h.updates <- c:
			return
		default:
		}
		select {
		case <-h.updates:
		default:
		}
	}
}

// Latest returns the most recently broadcast snapshot.
func (h *Hub) Latest() Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Run broadcasts published snapshots until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case c := <-h.updates:
			msg := Message{Type: MessagePaths, Host: h.ID, Revision: c.Revision, Width: h.width, Height: h.height, Paths: c.Paths}
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("[HUB] Failed to encode revision %d: %v", c.Revision, err)
				continue
			}
			h.mu.Lock()
			h.latest = msg
			h.mu.Unlock()
			h.broadcast(data)
		}
	}
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for p := range h.peers {
		select {
		case p.send <- data:
		default:
			log.Printf("[HUB] Dropping slow viewer %s", p.conn.RemoteAddr())
			delete(h.peers, p)
			close(p.send)
		}
	}
}

// add registers p and queues the current snapshot for it, both under the
// lock so that no broadcast can slip in between.
func (h *Hub) add(p *peer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	latest, err := json.Marshal(h.latest)
	if err != nil {
		return err
	}
	p.send <- latest
	h.peers[p] = true
	log.Printf("[HUB] Viewer connected from %s", p.conn.RemoteAddr())
	return nil
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.peers[p] {
		delete(h.peers, p)
		close(p.send)
		log.Printf("[HUB] Viewer %s disconnected", p.conn.RemoteAddr())
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for p := range h.peers {
		delete(h.peers, p)
		close(p.send)
	}
}

// Peers returns the number of connected viewers.
func (h *Hub) Peers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Handler serves /ws (snapshot stream), /paths (JSON) and /svg.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/paths", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := state.Save(w, h.Latest().Paths); err != nil {
			log.Printf("[HUB] Failed to serve paths: %v", err)
		}
	})
	mux.HandleFunc("/svg", func(w http.ResponseWriter, r *http.Request) {
		msg := h.Latest()
		w.Header().Set("Content-Type", "image/svg+xml")
		if err := export.WriteSVG(w, msg.Paths, msg.Width, msg.Height); err != nil {
			log.Printf("[HUB] Failed to serve svg: %v", err)
		}
	})
	return mux
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HUB] Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	p := &peer{conn: conn, send: make(chan []byte, peerQueue)}
	if err := h.add(p); err != nil {
		log.Printf("[HUB] Failed to greet %s: %v", r.RemoteAddr, err)
		conn.Close()
		return
	}

	go h.writePump(p)

	// Viewers only listen; reading detects when they go away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(p)
			return
		}
	}
}

func (h *Hub) writePump(p *peer) {
	defer p.conn.Close()
	for data := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[HUB] Error sending to %s: %v", p.conn.RemoteAddr(), err)
			h.remove(p)
			return
		}
	}
	p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// ListenAndServe runs the hub's HTTP server on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	log.Printf("[HUB] Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
