package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	ordersclient "github.com/Apurer/go-gin-orders-api/internal/clients/http/orders"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/workflows"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-orders-api/internal/platform/temporal"
)

const serviceName = "orders-client"

// Run fetches one batch from the orders API, prioritizes it and prints the queue.
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

	source, err := ordersclient.NewClient(cfg.APIURL, cfg.APIKey, nil, ordersclient.WithLogger(logger))
	if err != nil {
		return err
	}
	var orchestrator orderports.WorkflowOrchestrator = orderworkflows.NewInlinePrioritization(source, logger)
	if temporalClient, err := platformtemporal.Dial(cfg.Temporal, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, prioritizing inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orchestrator = orderworkflows.NewTemporalPrioritization(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.Temporal.Namespace))
	}

	ctx, span := instruments.Tracer("internal.app.client").Start(ctx, "OrdersClient.Prioritize")
	defer span.End()
	return Prioritize(ctx, orchestrator, cfg.Page, os.Stdout, logger)
}

// Prioritize runs one prioritization and writes the rendered queue and its
// size to out.
func Prioritize(ctx context.Context, orchestrator orderports.WorkflowOrchestrator, page int, out io.Writer, logger *slog.Logger) error {
	result, err := orchestrator.Prioritize(ctx, orderports.PrioritizeInput{Page: page})
	if err != nil {
		return fmt.Errorf("prioritize orders: %w", err)
	}
	if logger != nil {
		logger.Info("priority queue built",
			slog.Int("size", len(result.IDs)),
			slog.Int("rejected", len(result.Rejected)),
			slog.Any("ids", result.IDs))
	}
	if _, err := fmt.Fprintf(out, "%s\nsize: %d\n", result.Rendered, len(result.IDs)); err != nil {
		return err
	}
	return nil
}
