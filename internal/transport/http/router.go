package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bidscli/internal/config"
	"bidscli/internal/metrics"
	"bidscli/internal/middleware"
	"bidscli/internal/services"
	"bidscli/internal/validation"
)

// NewRouter assembles the full API router: middleware chain, bid analysis
// routes, health and prometheus endpoints.
func NewRouter(cfg *config.Config, service *services.BidService, registry *prometheus.Registry, m *metrics.Metrics, version string, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	if m != nil {
		r.Use(middleware.HTTPMetrics(m))
	}
	if cfg.Server.RateLimit.Enabled {
		r.Use(middleware.RateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))
	}

	fileValidator := validation.NewFileValidator(logger, cfg.Upload.MaxSizeBytes)
	bidsHandler := NewBidsHandler(service, fileValidator, cfg.Upload.MaxSizeBytes, logger)
	healthHandler := NewHealthHandler(service, version, logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/bids", bidsHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
