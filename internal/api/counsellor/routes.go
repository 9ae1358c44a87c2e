package counsellor

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers counsellor routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/counsellor", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Get("/sessions/{email}", h.ListSessions)
		r.Get("/session/{email}/{session_id}", h.GetSession)
		r.Get("/session/{email}/{session_id}/export", h.ExportSession)
		r.Post("/guidance", h.Guidance)
	})
}
