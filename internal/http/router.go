package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/inventory-form/docs"
	"github.com/rogerio-castellano/inventory-form/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-form/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires the form endpoints. Mutating routes go through limiter.
// metrics, when non-nil, is served at /metrics.
func NewRouter(h *handlers.Handlers, limiter *rl.Limiter, logger *slog.Logger, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/form", h.GetFormHandler)
	r.Get("/products", h.GetProductsHandler)
	r.Get("/metrics/dashboard", h.GetDashboardMetricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Put("/form", h.SetFieldsHandler)
		r.Put("/form/search", h.SetSearchHandler)
		r.Post("/form/submit", h.SubmitFormHandler)
		r.Post("/form/select/{id}", h.SelectProductHandler)
		r.Delete("/products/{id}", h.DeleteProductHandler)
	})

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	return r
}
