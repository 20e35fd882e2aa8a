// Package stream exposes engine events to websocket clients. Each
// connection registers one observer with the engine for one team; the
// connection closing unregisters it, so the engine's tracked set always
// mirrors the set of open streams plus any in-process observers.
package stream

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"football-events-service/internal/engine"
	"football-events-service/internal/events"
	"football-events-service/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 32
)

// Handler upgrades HTTP requests to websocket event streams.
type Handler struct {
	engine   *engine.Engine
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler constructs a stream Handler.
func NewHandler(eng *engine.Engine, logger *slog.Logger) *Handler {
	return &Handler{
		engine: eng,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// envelope is the wire shape for one event frame.
type envelope struct {
	Type    events.Kind  `json:"type"`
	Payload events.Event `json:"payload"`
}

// client is the engine observer backing one websocket connection.
// HandleEvent is called synchronously from the polling cycle, so it
// only enqueues; a slow or stalled connection drops frames rather than
// stalling the cycle.
type client struct {
	id     string
	teamID string
	conn   *websocket.Conn
	send   chan events.Event
	logger *slog.Logger
}

func (c *client) HandleEvent(ev events.Event) {
	select {
	case c.send <- ev:
	default:
		logging.Warn(c.logger, "event stream buffer full, dropping frame",
			slog.String(logging.FieldTeam, c.teamID),
			slog.String(logging.FieldEvent, string(ev.Kind())))
	}
}

// ServeTeamEvents upgrades the request and streams the team's events
// until the client disconnects.
func (h *Handler) ServeTeamEvents(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		http.Error(w, "missing team id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(h.logger, "websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		id:     uuid.NewString(),
		teamID: teamID,
		conn:   conn,
		send:   make(chan events.Event, sendBufferSize),
		logger: h.logger,
	}

	h.engine.Register(teamID, c)
	logging.Info(h.logger, "event stream opened",
		slog.String(logging.FieldTeam, teamID), slog.String("client_id", c.id))

	done := make(chan struct{})
	go h.writeLoop(c, done)
	go h.readLoop(c, done)
}

// readLoop discards inbound frames and detects disconnects.
func (h *Handler) readLoop(c *client, done chan struct{}) {
	defer func() {
		close(done)
		h.engine.Unregister(c.teamID, c)
		c.conn.Close()
		logging.Info(h.logger, "event stream closed",
			slog.String(logging.FieldTeam, c.teamID), slog.String("client_id", c.id))
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writeLoop(c *client, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case ev := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			frame, err := json.Marshal(envelope{Type: ev.Kind(), Payload: ev})
			if err != nil {
				logging.Error(h.logger, "failed to encode event frame", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
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
