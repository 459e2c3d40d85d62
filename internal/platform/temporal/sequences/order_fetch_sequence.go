package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/go-gin-orders-api/internal/platform/temporal/activities/orders"
)

// RunOrderFetchSequence fetches the requested page through the FetchOrders activity.
func RunOrderFetchSequence(ctx workflow.Context, page int) (*orderports.Batch, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order fetch sequence started", "page", page)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var batch orderports.Batch
	err := workflow.ExecuteActivity(ctx, orderactivities.FetchOrdersActivityName, page).Get(ctx, &batch)
	if err != nil {
		logger.Error("order fetch sequence failed", "page", page, "error", err)
		return nil, err
	}
	logger.Info("order fetch sequence completed", "page", page, "size", len(batch.Orders))
	return &batch, nil
}
