package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"leo-furniture-api/internal/handler"
	"leo-furniture-api/internal/middleware"
)

// Config holds the configuration for creating a router.
type Config struct {
	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	ItemHandler      *handler.ItemHandler
	ExpenseHandler   *handler.ExpenseHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   func(http.Handler) http.Handler
	CORSOrigins      []string
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// PUBLIC routes (no auth required)
	r.Get("/api/status", cfg.HealthHandler.Status)
	r.Get("/api/v1/health", cfg.HealthHandler.Health)
	r.Post("/api/v1/auth/register", cfg.AuthHandler.Register)
	r.Post("/api/v1/auth/login", cfg.AuthHandler.Login)

	// AUTHENTICATED routes
	r.Group(func(r chi.Router) {
		r.Use(cfg.AuthMiddleware)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/auth/logout", cfg.AuthHandler.Logout)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", cfg.ItemHandler.List)
				r.Post("/", cfg.ItemHandler.Create)
				r.Patch("/{id}", cfg.ItemHandler.Update)
				r.Post("/{id}/sell", cfg.ItemHandler.Sell)
				r.Delete("/{id}", cfg.ItemHandler.Delete)
				r.Get("/{id}/expenses", cfg.ExpenseHandler.ListForItem)
			})

			r.Post("/expenses", cfg.ExpenseHandler.Create)

			r.Get("/analytics/summary", cfg.AnalyticsHandler.Summary)
		})
	})

	return r
}
