// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/chronod/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	calcHandler *handlers.CalcHandler,
	eventHandler *handlers.EventHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Date, time and unit calculators.
		r.Post("/calc/date/diff", calcHandler.DateDiff)
		r.Post("/calc/date/add", calcHandler.DateAdd)
		r.Post("/calc/time/gap", calcHandler.TimeGap)
		r.Post("/calc/time/add", calcHandler.TimeAdd)
		r.Post("/calc/convert", calcHandler.Convert)

		// Event registry.
		r.Get("/events", eventHandler.ListEvents)
		r.Post("/events", eventHandler.CreateEvent)
		r.Get("/events/{id}", eventHandler.GetEvent)
		r.Delete("/events/{id}", eventHandler.DeleteEvent)

		// Merged agenda and feed control.
		r.Get("/agenda", eventHandler.Agenda)
		r.Post("/feeds/refresh", eventHandler.RefreshFeeds)
	})

	return r
}
