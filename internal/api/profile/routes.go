package profile

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers profile routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/profile", func(r chi.Router) {
		r.Post("/", h.UpsertProfile)
		r.Post("/parse-cv", h.ParseCV)
		r.Get("/{email}", h.GetProfile)
		r.Delete("/{email}", h.DeleteAccount)
	})
}
