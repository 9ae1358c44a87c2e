package api

import (
	"net/http"
	"time"

	contentapi "github.com/futig/counsellor-backend/internal/api/content"
	counsellorapi "github.com/futig/counsellor-backend/internal/api/counsellor"
	"github.com/futig/counsellor-backend/internal/api/docs"
	"github.com/futig/counsellor-backend/internal/api/middleware"
	profileapi "github.com/futig/counsellor-backend/internal/api/profile"
	universityapi "github.com/futig/counsellor-backend/internal/api/university"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by SetupRouter
type Handlers struct {
	Counsellor *counsellorapi.Handler
	Profile    *profileapi.Handler
	Content    *contentapi.Handler
	University *universityapi.Handler
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(handlers Handlers, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                  // Recover from panics
	r.Use(chimiddleware.RequestID)                  // Add request ID
	r.Use(middleware.Logger(logger))                // Log requests
	r.Use(middleware.CORS(allowedOrigins))          // Handle CORS
	r.Use(chimiddleware.Timeout(120 * time.Second)) // Generation calls can be slow

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	counsellorapi.RegisterRoutes(r, handlers.Counsellor)
	profileapi.RegisterRoutes(r, handlers.Profile)
	contentapi.RegisterRoutes(r, handlers.Content)
	universityapi.RegisterRoutes(r, handlers.University)

	return r
}
