package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vas-gateway/config"
	httpHandler "vas-gateway/internal/adapter/http/handler"
	"vas-gateway/internal/adapter/provider"
	pgStorage "vas-gateway/internal/adapter/storage/postgres"
	redisStorage "vas-gateway/internal/adapter/storage/redis"
	"vas-gateway/internal/core/ports"
	"vas-gateway/internal/metrics"
	"vas-gateway/internal/service"
	"vas-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

// providerCodes lists every C4 adapter expected to be wired into the C5
// dispatcher; logRegisteredProviders warns on startup if one is missing.
var providerCodes = []string{"MTN", "GLO", "AIRTEL", "9MOBILE", "PAYVANTAGE", "CREDITSWITCH"}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("starting VAS gateway")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.RunMigrations(cfg.Database.DSN(), "migrations", log); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// --- Repositories (C1/C2/C3/C4 persistence) ---
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	productRepo := pgStorage.NewProductRepo(pool)
	discountRepo := pgStorage.NewDiscountRepo(pool)
	providerRepo := pgStorage.NewProviderRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	requeryAttemptRepo := pgStorage.NewRequeryAttemptRepository(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	// --- Redis-backed caches/stores ---
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	productCache := redisStorage.NewProductCache(rdb, log)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	requeryLease := redisStorage.NewRequeryLease(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)

	// --- Ambient services ---
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)

	// --- C4 provider adapters + C5 dispatcher ---
	adapters := map[string]ports.ProviderAdapter{
		"MTN":          provider.NewMTN(),
		"GLO":          provider.NewGlo(),
		"AIRTEL":       provider.NewAirtel(),
		"9MOBILE":      provider.NewNineMobile(),
		"PAYVANTAGE":   provider.NewPayvantage(),
		"CREDITSWITCH": provider.NewCreditSwitch(),
	}
	dispatcher := service.NewProviderDispatcher(adapters, cfg.Provider.CircuitBreakerWindow, cfg.Provider.CircuitBreakerTrips, log)
	logRegisteredProviders(log, adapters)

	metricsSvc := metrics.New(nil)
	dispatcher.SetMetrics(metricsSvc)

	// --- C7/C8 business services ---
	authSvc := service.NewAuthService(merchantRepo, productCache, hashSvc, encSvc, sigSvc, tokenSvc, nonceStore)
	productSvc := service.NewProductService(productRepo, productCache)
	reconciler := service.NewReconciler(txRepo, merchantRepo, transactor, log)
	workers := service.NewReconcileWorkers(
		txRepo,
		providerRepo,
		dispatcher,
		requeryLease,
		requeryAttemptRepo,
		reconciler,
		service.ReconcileWorkersConfig{
			InitialDelay:           cfg.Requery.InitialDelay,
			RetryInterval:          cfg.Requery.RetryInterval,
			MaxRetries:             cfg.Requery.MaxRetries,
			LeaseTTL:               cfg.Requery.LeaseTTL,
			PendingTimeout:         cfg.Sweeper.PendingTimeout,
			SweepBatchSize:         cfg.Sweeper.BatchSize,
			MaxConcurrentRequeries: 10,
		},
		log,
	)
	workers.SetMetrics(metricsSvc)
	coordinator := service.NewVendingCoordinator(
		merchantRepo,
		txRepo,
		productRepo,
		discountRepo,
		providerRepo,
		idempotencyRepo,
		idempotencyCache,
		productCache,
		dispatcher,
		workers,
		transactor,
		cfg.Vending.Location(),
		cfg.Vending.IdempotencyTTL,
		log,
	)
	coordinator.SetMetrics(metricsSvc)

	// --- Health checkers ---
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Coordinator:    coordinator,
		Products:       productSvc,
		Workers:        workers,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Metrics:        metricsSvc,
		Logger:         log,
	})

	// cron-equivalent timeout sweep, running alongside the manual
	// cronReverseTimeoutUnreversedTransaction endpoint named in spec.md §6.
	stopSweeper := make(chan struct{})
	go runSweeperLoop(workers, cfg.Sweeper.Interval, log, stopSweeper)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	close(stopSweeper)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func logRegisteredProviders(log zerolog.Logger, adapters map[string]ports.ProviderAdapter) {
	for _, code := range providerCodes {
		if _, ok := adapters[code]; !ok {
			log.Warn().Str("provider_code", code).Msg("provider adapter not registered")
		}
	}
}

func runSweeperLoop(workers ports.ReconcileWorkers, interval time.Duration, log zerolog.Logger, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			swept, err := workers.SweepTimeouts(ctx)
			cancel()
			if err != nil {
				log.Error().Err(err).Msg("timeout sweep failed")
				continue
			}
			if swept > 0 {
				log.Info().Int("reversed", swept).Msg("timeout sweep reversed transactions")
			}
		case <-stop:
			return
		}
	}
}
