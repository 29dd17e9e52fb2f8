package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignite/campaign-chat/internal/config"
	"github.com/ignite/campaign-chat/internal/pkg/logger"
)

// SetupRoutes configures all API routes. health may be nil, in which case
// the /health endpoints are not mounted.
func SetupRoutes(cfg *config.Config, h *Handlers, health *HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	// Middleware. Access logs go through the process logger.
	accessLog := log.New(logger.Zerolog(), "", 0)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: accessLog, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(recordRequestMetrics)

	// CORS - explicit origins from config
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if health != nil {
		r.Get("/health", health.HandleHealth)
		r.Get("/health/live", health.HandleLiveness)
		r.Get("/health/ready", health.HandleReadiness)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/data-sources", func(r chi.Router) {
			r.Get("/", h.HandleListDataSources)
			r.Post("/{sourceID}/connect", h.HandleConnectDataSource)
			r.Delete("/{sourceID}/disconnect", h.HandleDisconnectDataSource)
		})

		r.Route("/chat", func(r chi.Router) {
			if cfg.RateLimit.IsEnabled() {
				r.Use(httprate.LimitByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window()))
			}
			r.Post("/message", h.HandleChatMessage)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
