package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/minipay/internal/adapter/http/handler"
	"github.com/iho/minipay/internal/adapter/http/middleware"
	"github.com/iho/minipay/internal/infrastructure/auth"
	"github.com/iho/minipay/internal/infrastructure/metrics"
	"github.com/iho/minipay/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	UserHandler      *handler.UserHandler
	AccountHandler   *handler.AccountHandler
	TransferHandler  *handler.TransferHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
	Metrics          *metrics.Metrics
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	requireAuth := middleware.AuthMiddleware(cfg.JWTManager)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", cfg.UserHandler.Signup)
			r.Post("/signin", cfg.UserHandler.Signin)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Put("/", cfg.UserHandler.Update)
				r.Get("/bulk", cfg.UserHandler.Search)
			})
		})

		r.Route("/account", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/balance", cfg.AccountHandler.Balance)

			r.Group(func(r chi.Router) {
				if cfg.IdempotencyStore != nil {
					idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
					r.Use(idempotency.Wrap)
				}
				r.Post("/transfer", cfg.TransferHandler.Create)
			})
		})
	})

	return r
}
