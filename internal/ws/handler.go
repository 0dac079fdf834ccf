package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mlb-scores-service/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced at the router; the feed is read-only.
		return true
	},
}

// Handler upgrades HTTP connections and attaches them to the hub.
type Handler struct {
	hub    *Hub
	ctx    context.Context
	logger *slog.Logger
}

// NewHandler creates a websocket handler. The context bounds client
// pump lifetimes, so pass the server's run context rather than a
// request context.
func NewHandler(ctx context.Context, hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{hub: hub, ctx: ctx, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(h.logger, "ws upgrade failed", "err", err)
		return
	}

	c := newClient(uuid.NewString(), conn, h.hub, h.logger)
	h.hub.Register(c)

	go c.writePump(h.ctx)
	go c.readPump(h.ctx)
}
