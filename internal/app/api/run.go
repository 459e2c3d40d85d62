package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	ordersserver "github.com/Apurer/go-gin-orders-api/go"
	ordermemory "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/persistence/postgres"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/simulator"
	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-orders-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-orders-api/internal/platform/postgres"
)

const serviceName = "orders-api"

// Run boots the orders HTTP API and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	obsCfg, err := platformobservability.ConfigFromEnv(serviceName)
	if err != nil {
		return fmt.Errorf("invalid observability configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	router, cleanup, err := NewRouter(ctx, cfg, instruments)
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("orders API listening", slog.String("addr", cfg.Addr()))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("orders API server exited", slog.String("addr", cfg.Addr()), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("orders API shutting down")
	return server.Shutdown(shutdownCtx)
}

// NewRouter seeds the order store with a generated dataset and returns the
// instrumented gin engine plus a cleanup for the store connection.
func NewRouter(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (*gin.Engine, func(), error) {
	logger := slog.Default()
	if instruments != nil && instruments.Logger != nil {
		logger = instruments.Logger
	}

	repo, cleanup, err := buildRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := seedOrders(ctx, repo, cfg); err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Info("order dataset generated", slog.Int("size", cfg.SampleSize), slog.Bool("seeded", cfg.Seeded))

	core := orderapp.NewService(repo, orderapp.WithPageSize(cfg.PageSize), orderapp.WithLogger(logger))
	service := orderobs.New(
		core,
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	router := ordersserver.NewRouterWithGinEngine(engine, ordersserver.ApiHandleFunctions{
		OrdersAPI: ordersserver.NewOrdersAPI(service),
	})
	return router, cleanup, nil
}

// seedOrders replaces whatever the store holds with a freshly generated dataset,
// so a smaller sample size never leaves older orders behind.
func seedOrders(ctx context.Context, repo orderports.Repository, cfg Config) error {
	var genOpts []simulator.Option
	if cfg.Seeded {
		genOpts = append(genOpts, simulator.WithSeed(cfg.Seed))
	}
	generator := simulator.NewGenerator(cfg.SampleSize, genOpts...)
	if err := repo.ReplaceAll(ctx, generator.Generate()); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	return nil
}

func buildRepository(ctx context.Context, cfg Config, logger *slog.Logger) (orderports.Repository, func(), error) {
	db, cleanup := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return ordermemory.NewRepository(), cleanup, nil
	}
	if err := migrations.Run(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("migrate orders schema: %w", err)
	}
	logger.Info("order repository configured with postgres")
	return orderpostgres.NewRepository(db), cleanup, nil
}
