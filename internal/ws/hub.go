package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
)

const broadcastBuffer = 64

// Event is the wire frame pushed to connected dashboards.
type Event struct {
	Type    string                   `json:"type"`
	Date    string                   `json:"date,omitempty"`
	Payload games.ScoreboardResponse `json:"payload"`
	SentAt  time.Time                `json:"sentAt"`
}

const eventTypeScoreboard = "scoreboard"

// Hub maintains the set of active clients and fans scoreboard refreshes
// out to them.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan games.ScoreboardResponse
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewHub creates a hub; call Run before accepting connections.
func NewHub(logger *slog.Logger, recorder *metrics.Recorder) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan games.ScoreboardResponse, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
		recorder:   recorder,
		now:        time.Now,
	}
}

// Run processes registrations and broadcasts until the context ends.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case sb := <-h.broadcast:
			h.broadcastScoreboard(sb)
		}
	}
}

// Register adds a client to the hub. After shutdown the client's send
// channel is closed immediately so its write pump terminates.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

// Unregister removes a client from the hub. Returns without blocking
// once the hub has shut down.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues a scoreboard refresh for fan-out. Drops the update
// when the queue is full rather than blocking the poller.
func (h *Hub) Broadcast(sb games.ScoreboardResponse) {
	select {
	case h.broadcast <- sb:
	default:
		logging.Warn(h.logger, "broadcast buffer full, dropping update", "date", sb.Date)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	h.clients[c] = true
	logging.Info(h.logger, "ws client connected", "client_id", c.ID, "total", len(h.clients))
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		logging.Info(h.logger, "ws client disconnected", "client_id", c.ID, "total", len(h.clients))
	}
}

func (h *Hub) broadcastScoreboard(sb games.ScoreboardResponse) {
	h.clientsMu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.clientsMu.RUnlock()

	event := Event{
		Type:    eventTypeScoreboard,
		Date:    sb.Date,
		Payload: sb,
		SentAt:  h.now().UTC(),
	}

	for _, c := range targets {
		if !c.trySend(event) {
			// Slow consumer; cut it loose instead of backing up the hub.
			logging.Warn(h.logger, "ws client buffer full, disconnecting", "client_id", c.ID)
			go h.Unregister(c)
		}
	}
	if h.recorder != nil {
		h.recorder.RecordBroadcast(len(targets))
	}
}

func (h *Hub) shutdown() {
	close(h.done)
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}
