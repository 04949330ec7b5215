package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"energylab/internal/calculator"
	"energylab/internal/config"
	"energylab/internal/handlers"
	"energylab/internal/observability"
)

func NewRouter(cfg *config.Config) http.Handler {

	r := chi.NewRouter()
	httpMetrics := observability.NewHTTPMetrics()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", observability.RequestIDHeader},
		ExposedHeaders:   []string{observability.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(httpMetrics.Middleware)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", httpMetrics.Handler())

	calculator.RegisterRoutes(r)

	return r
}
