package progress

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow all origins; the API is same-origin in production behind a proxy
		return true
	},
}

// Event - one progress update for a remix job
type Event struct {
	JobID     string    `json:"jobId"`
	Type      string    `json:"type"`
	Phase     string    `json:"phase,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher - anything job progress can be pushed to
type Publisher interface {
	Publish(jobID string, event Event)
}

// NopPublisher - discards every event, for tests and headless runs
type NopPublisher struct{}

func (NopPublisher) Publish(string, Event) {}

// subscriber - one websocket connection watching a job
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub - fan-out of job progress events to websocket subscribers. Subscribers
// are grouped per job id; a slow subscriber is dropped rather than blocking
// the worker.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}
}

// NewHub - create an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*subscriber]struct{})}
}

var _ Publisher = (*Hub)(nil)

// Publish - send an event to every subscriber of the job
func (h *Hub) Publish(jobID string, event Event) {
	event.JobID = jobID
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling progress event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[jobID] {
		select {
		case sub.send <- payload:
		default:
			close(sub.send)
			delete(h.subs[jobID], sub)
		}
	}
}

// add - register a subscriber for a job
func (h *Hub) add(jobID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[jobID] == nil {
		h.subs[jobID] = make(map[*subscriber]struct{})
	}
	h.subs[jobID][sub] = struct{}{}
}

// remove - drop a subscriber; the last one removes the job entry
func (h *Hub) remove(jobID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.subs[jobID]; ok {
		if _, live := set[sub]; live {
			close(sub.send)
			delete(set, sub)
		}
		if len(set) == 0 {
			delete(h.subs, jobID)
		}
	}
}

// HandleWebSocket - GET /ws?job=<jobId>, upgrade and stream progress events
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job")
	if jobID == "" {
		http.Error(w, "Missing job parameter", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, 64),
	}
	h.add(jobID, sub)

	log.Printf("🔍 New progress subscriber - Job: %s", jobID)

	go sub.writePump()
	go sub.readPump(h, jobID)
}

// readPump - drain the connection until the client goes away. Clients never
// send meaningful messages; reading just detects the close.
func (s *subscriber) readPump(h *Hub, jobID string) {
	defer func() {
		h.remove(jobID, s)
		s.conn.Close()
	}()

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump - push queued events to the client
func (s *subscriber) writePump() {
	defer s.conn.Close()

	for {
		message, ok := <-s.send
		if !ok {
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}
