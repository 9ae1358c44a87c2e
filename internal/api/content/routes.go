package content

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers content routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/content", func(r chi.Router) {
		r.Get("/scholarships", h.SearchScholarships)
	})
}
