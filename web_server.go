package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net"
	"net/http"
	"sync"
	"time"

	"lisa_evolver/logx"

	"github.com/gorilla/websocket"
)

// WSHub manages WebSocket connections and broadcasts
type WSHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan WSMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mutex      sync.RWMutex
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type string      `json:"type"` // "status", "round"
	Data interface{} `json:"data"`
	Time int64       `json:"time"` // Unix timestamp
}

const (
	MsgTypeStatus = "status"
	MsgTypeRound  = "round"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewWSHub creates a hub and starts its dispatch loop.
func NewWSHub() *WSHub {
	hub := &WSHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan WSMessage, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
	}
	go hub.run()
	return hub
}

// run processes messages in the hub; it is the only writer once a client is
// registered.
func (hub *WSHub) run() {
	for {
		select {
		case <-hub.done:
			hub.mutex.Lock()
			for client := range hub.clients {
				client.Close()
				delete(hub.clients, client)
			}
			hub.mutex.Unlock()
			return

		case client := <-hub.register:
			hub.mutex.Lock()
			hub.clients[client] = true
			hub.mutex.Unlock()

		case client := <-hub.unregister:
			hub.mutex.Lock()
			delete(hub.clients, client)
			hub.mutex.Unlock()

		case message := <-hub.broadcast:
			hub.mutex.RLock()
			for client := range hub.clients {
				client.SetWriteDeadline(time.Now().Add(2 * time.Second))
				if err := client.WriteJSON(message); err != nil {
					// Client disconnected, will be cleaned up by unregister
					continue
				}
			}
			hub.mutex.RUnlock()
		}
	}
}

// Broadcast queues a message for all clients. Drops it if the queue is full
// so the evolution loop never waits on slow viewers.
func (hub *WSHub) Broadcast(msgType string, data interface{}) {
	msg := WSMessage{
		Type: msgType,
		Data: data,
		Time: time.Now().Unix(),
	}

	select {
	case hub.broadcast <- msg:
	case <-hub.done:
	default:
	}
}

// Clients returns the number of connected clients.
func (hub *WSHub) Clients() int {
	hub.mutex.RLock()
	defer hub.mutex.RUnlock()
	return len(hub.clients)
}

// Close stops the dispatch loop and drops all clients.
func (hub *WSHub) Close() {
	select {
	case <-hub.done:
	default:
		close(hub.done)
	}
}

// Server is the viewer: it only ever reads snapshots of the best-ever state.
type Server struct {
	runID   string
	kind    ShapeKind
	best    *BestState
	history *History
	metrics *Metrics
	hub     *WSHub
	start   time.Time

	mux *http.ServeMux
	srv *http.Server
}

// NewServer wires the viewer endpoints. history and metrics may be nil.
func NewServer(runID string, kind ShapeKind, best *BestState, history *History, metrics *Metrics) *Server {
	s := &Server{
		runID:   runID,
		kind:    kind,
		best:    best,
		history: history,
		metrics: metrics,
		hub:     NewWSHub(),
		start:   time.Now(),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/lisa", getOnly(s.handleStatus))
	s.mux.HandleFunc("/lisa.png", getOnly(s.handleImage))
	s.mux.HandleFunc("/lisa.json", getOnly(s.handleJSON))
	s.mux.HandleFunc("/history.png", getOnly(s.handleHistory))
	s.mux.HandleFunc("/ws", getOnly(s.handleWebSocket))
	s.mux.Handle("/metrics", getOnly(metrics.Handler().ServeHTTP))

	s.srv = &http.Server{
		Handler:           corsMiddleware(s.mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the full viewer handler.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Listen binds addr. Binding is done up front so a busy port fails startup.
func (s *Server) Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("viewer listen %s: %w", addr, err)
	}
	return ln, nil
}

// Serve blocks until the server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	err := s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown closes websocket clients and stops accepting requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.srv.Shutdown(ctx)
}

// Report implements Reporter by pushing a round message to websocket clients.
func (s *Server) Report(r RoundReport) {
	dto := snapshotToDTO(s.runID, s.kind, s.best.Width, s.best.Height, r.Snapshot, false)
	dto.Elapsed = logx.FormatDuration(r.Elapsed)
	s.hub.Broadcast(MsgTypeRound, dto)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.metrics.observeRequest("status")
	snap := s.best.Snapshot()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html>Run: %s <br/>Shape: %s <br/>Round: %v <br/>Score: %v <br/>Shapes: %d <br/>Elapsed: %v <br/><img src=\"lisa.png\"></html>",
		s.runID, s.kind, snap.Round, snap.Score, len(snap.Candidate), time.Since(s.start).Round(time.Second))
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	s.metrics.observeRequest("image")
	_, raster := s.best.Render()

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, raster.Image()); err != nil {
		logx.LogWeb("png encode failed: %v", err)
	}
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	s.metrics.observeRequest("json")
	snap := s.best.Snapshot()
	dto := snapshotToDTO(s.runID, s.kind, s.best.Width, s.best.Height, snap, true)
	dto.Elapsed = logx.FormatDuration(time.Since(s.start))
	writeJSON(w, dto)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		http.NotFound(w, r)
		return
	}
	s.metrics.observeRequest("history")

	var buf bytes.Buffer
	if err := s.history.WritePNG(&buf, fmt.Sprintf("%s (%s)", s.runID, s.kind)); err != nil {
		logx.LogWeb("history plot failed: %v", err)
		http.Error(w, "plot failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logx.LogWeb("websocket upgrade error: %v", err)
		return
	}
	s.metrics.observeRequest("ws")
	logx.LogViewer(fmt.Sprintf("websocket client connected from %s", r.RemoteAddr))

	// Greet before registering: after that only the hub writes.
	snap := s.best.Snapshot()
	ws.WriteJSON(WSMessage{
		Type: MsgTypeStatus,
		Data: snapshotToDTO(s.runID, s.kind, s.best.Width, s.best.Height, snap, false),
		Time: time.Now().Unix(),
	})

	select {
	case s.hub.register <- ws:
	case <-s.hub.done:
		ws.Close()
		return
	}
	defer func() {
		select {
		case s.hub.unregister <- ws:
		case <-s.hub.done:
		}
		ws.Close()
	}()

	// Drain client frames until it goes away.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

// getOnly answers 404 for anything but GET and HEAD.
func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}
}

// corsMiddleware lets dashboards on other origins read the viewer.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.LogWeb("json encode failed: %v", err)
	}
}
