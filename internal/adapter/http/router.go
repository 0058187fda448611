package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/handler"
	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/middleware"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	FabricHandler         *handler.FabricHandler
	SalesHandler          *handler.SalesHandler
	CashbookHandler       *handler.CashbookHandler
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	IdempotencyTTL        time.Duration
	RateLimiter           *middleware.RateLimiter
	Logger                zerolog.Logger
	MetricsHandler        http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).WithTTL(cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Fabrics, stock and sales
		r.Route("/fabrics", func(r chi.Router) {
			r.Post("/", cfg.FabricHandler.Create)
			r.Get("/", cfg.FabricHandler.List)
			r.Get("/{id}", cfg.FabricHandler.Get)
			r.Post("/{id}/batches", cfg.FabricHandler.AddBatch)
			r.Get("/{id}/batches", cfg.FabricHandler.ListBatches)
			r.Get("/{id}/stock", cfg.FabricHandler.Stock)
			r.Post("/{id}/sales/preview", cfg.FabricHandler.PreviewSale)
			r.Post("/{id}/sales", cfg.FabricHandler.Sell)
		})

		// Sales history
		r.Route("/sales", func(r chi.Router) {
			r.Get("/", cfg.SalesHandler.List)
			r.Get("/summary", cfg.SalesHandler.Summary)
			r.Get("/{id}", cfg.SalesHandler.Get)
		})

		// Cashbook
		r.Route("/cashbook", func(r chi.Router) {
			r.Post("/entries", cfg.CashbookHandler.CreateEntry)
			r.Get("/entries", cfg.CashbookHandler.ListEntries)
			r.Delete("/entries/{id}", cfg.CashbookHandler.DeleteEntry)
			r.Post("/payments", cfg.CashbookHandler.RecordPayment)
			r.Get("/report", cfg.CashbookHandler.Report)
			r.Get("/export", cfg.CashbookHandler.Export)
		})

		// Reconciliation
		r.Route("/reconciliation", func(r chi.Router) {
			r.Get("/", cfg.ReconciliationHandler.Report)
			r.Get("/fabrics/{id}", cfg.ReconciliationHandler.Fabric)
		})
	})

	return r
}
