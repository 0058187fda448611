package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http"
	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/handler"
	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/middleware"
	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/export"
	postgresRepo "github.com/rishad190/bhaiyaPos-sub001/internal/adapter/repository/postgres"
	redisRepo "github.com/rishad190/bhaiyaPos-sub001/internal/adapter/repository/redis"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/config"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/logger"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/metrics"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/postgres"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/redis"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

const (
	poolStatsInterval      = 15 * time.Second
	limiterCleanupInterval = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			return err
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	} else {
		log.Warn().Msg("redis disabled, running without report cache and idempotency")
	}

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	fabricRepo := postgresRepo.NewFabricRepository(pool)
	batchRepo := postgresRepo.NewBatchRepository(pool)
	saleRepo := postgresRepo.NewSaleRepository(pool)
	cashbookRepo := postgresRepo.NewCashbookRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	// Initialize use cases
	inventoryUC := usecase.NewInventoryUseCase(txManager, fabricRepo, batchRepo, saleRepo, idGen, retrier, appMetrics, log)
	salesUC := usecase.NewSalesUseCase(saleRepo)
	cashbookUC := usecase.NewCashbookUseCase(cashbookRepo, paymentRepo, idGen, log,
		cashbookOptions(cfg, redisClient, appMetrics)...)
	reconciliationUC := usecase.NewReconciliationUseCase(fabricRepo, batchRepo, saleRepo)

	var idempotencyStore usecase.IdempotencyStore
	var redisPinger handler.Pinger
	if redisClient != nil {
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		redisPinger = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	rateLimiter := newRateLimiter(cfg, appMetrics)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		FabricHandler:         handler.NewFabricHandler(inventoryUC),
		SalesHandler:          handler.NewSalesHandler(salesUC),
		CashbookHandler:       handler.NewCashbookHandler(cashbookUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisPinger),
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		RateLimiter:           rateLimiter,
		Logger:                log,
	})

	go reportPoolStats(ctx, pool, appMetrics)
	if rateLimiter != nil {
		go cleanupLimiters(ctx, rateLimiter)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// cashbookOptions enables the report cache when Redis is available.
func cashbookOptions(cfg *config.Config, redisClient *goredis.Client, m usecase.Metrics) []usecase.CashbookOption {
	opts := []usecase.CashbookOption{
		usecase.WithReportExporter(export.NewXLSXExporter()),
		usecase.WithMetrics(m),
	}
	if redisClient != nil {
		opts = append(opts, usecase.WithReportCache(redisRepo.NewCache(redisClient), cfg.ReportCacheTTL))
	}
	return opts
}

// newRateLimiter returns nil when rate limiting is disabled.
func newRateLimiter(cfg *config.Config, m *metrics.Metrics) *middleware.RateLimiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).OnLimit(m.RecordRateLimitHit)
}

func reportPoolStats(ctx context.Context, pool *pgxpool.Pool, m *metrics.Metrics) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stat := pool.Stat()
			m.SetDBConnections(stat.TotalConns(), stat.IdleConns(), stat.AcquiredConns())
		}
	}
}

func cleanupLimiters(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupLimiters()
		}
	}
}
