package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"football-events-service/internal/engine"
	"football-events-service/internal/providers"
)

// Handler wires HTTP routes to the polling engine.
type Handler struct {
	engine *engine.Engine
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(eng *engine.Engine, logger *slog.Logger) *Handler {
	return &Handler{engine: eng, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the polling loop is healthy.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.engine.Status().IsReady() {
		h.writeError(w, nethttp.StatusServiceUnavailable, "polling loop failing")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// EngineStatus returns the scheduler's health snapshot.
func (h *Handler) EngineStatus(w nethttp.ResponseWriter, r *nethttp.Request) {
	status := h.engine.Status()
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"state":                status.State,
		"tracked_teams":        status.TrackedTeams,
		"cached_matches":       status.CachedMatches,
		"consecutive_failures": status.ConsecutiveFailures,
		"last_error":           status.LastError,
		"last_cycle":           status.LastCycle,
		"last_success":         status.LastSuccess,
	})
}

// LiveMatch returns the team's currently running match, if any.
func (h *Handler) LiveMatch(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID := chi.URLParam(r, "teamID")
	match, ok := h.engine.LiveMatch(teamID)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "no live match")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, match)
}

// TodayMatch returns the team's match on the current UTC day, if any.
func (h *Handler) TodayMatch(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID := chi.URLParam(r, "teamID")
	match, ok := h.engine.TodayMatch(teamID)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "no match today")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, match)
}

// NextMatch returns the team's next scheduled match from upstream.
func (h *Handler) NextMatch(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID := chi.URLParam(r, "teamID")
	match, ok, err := h.engine.NextMatch(r.Context(), teamID)
	if err != nil {
		status, msg := upstreamErrorStatus(err)
		if h.logger != nil {
			h.logger.Warn("next match lookup failed", "team", teamID, "error", err)
		}
		h.writeError(w, status, msg)
		return
	}
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "no scheduled match")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, match)
}

func upstreamErrorStatus(err error) (int, string) {
	var cfgErr *providers.ConfigurationError
	if errors.As(err, &cfgErr) {
		return nethttp.StatusServiceUnavailable, "provider not configured"
	}
	var authErr *providers.AuthenticationError
	if errors.As(err, &authErr) {
		return nethttp.StatusBadGateway, "provider authentication failed"
	}
	return nethttp.StatusBadGateway, "provider lookup failed"
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
