package university

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers university directory routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/universities", func(r chi.Router) {
		r.Get("/search", h.Search)
	})
}
