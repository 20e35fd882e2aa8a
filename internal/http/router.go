package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	corslib "github.com/rs/cors"
)

// StreamHandler serves the per-team event stream endpoint.
type StreamHandler interface {
	ServeTeamEvents(w nethttp.ResponseWriter, r *nethttp.Request)
}

// NewRouter registers HTTP routes.
func NewRouter(handler *Handler, stream StreamHandler) nethttp.Handler {
	r := chi.NewRouter()

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/status", handler.EngineStatus)

	r.Route("/teams/{teamID}", func(r chi.Router) {
		r.Get("/live", handler.LiveMatch)
		r.Get("/today", handler.TodayMatch)
		r.Get("/next", handler.NextMatch)
		if stream != nil {
			r.Get("/events", stream.ServeTeamEvents)
		}
	})

	return corslib.New(corslib.Options{
		AllowedMethods: []string{nethttp.MethodGet},
	}).Handler(r)
}
