package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.temporal.io/sdk/activity"
	temporalworker "go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	ordersclient "github.com/Apurer/go-gin-orders-api/internal/clients/http/orders"
	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-orders-api/internal/platform/temporal"
	orderactivities "github.com/Apurer/go-gin-orders-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/platform/temporal/workflows/orders"
)

const serviceName = "orders-worker"

// Run polls the prioritization task queue until ctx is cancelled.
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
	temporalClient, err := platformtemporal.Dial(cfg.Temporal, instruments, "temporal-worker")
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	w := temporalworker.New(temporalClient, orderworkflows.PrioritizationTaskQueue, temporalworker.Options{})
	Register(w, orderactivities.NewActivities(source))

	logger.Info("worker listening",
		slog.String("taskQueue", orderworkflows.PrioritizationTaskQueue),
		slog.String("namespace", cfg.Temporal.Namespace))
	stop := make(chan interface{})
	go func() {
		<-ctx.Done()
		close(stop)
	}()
	if err := w.Run(stop); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Temporal worker stopped")
	return nil
}

// Registry is the subset of worker.Registry needed by Register.
type Registry interface {
	RegisterWorkflowWithOptions(w interface{}, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

// Register adds the prioritization workflow and its activities to r.
func Register(r Registry, acts *orderactivities.Activities) {
	r.RegisterWorkflowWithOptions(orderworkflows.PrioritizationWorkflow, workflow.RegisterOptions{Name: orderworkflows.PrioritizationWorkflowName})
	r.RegisterActivityWithOptions(acts.FetchOrders, activity.RegisterOptions{Name: orderactivities.FetchOrdersActivityName})
}
