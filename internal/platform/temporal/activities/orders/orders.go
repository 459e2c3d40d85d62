package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

// FetchOrdersActivityName fetches one batch of raw orders from the configured source.
const FetchOrdersActivityName = "orders.activities.FetchOrders"

// Activities groups activities that reach outside the prioritization workflow.
type Activities struct {
	source orderports.OrderSource
}

// NewActivities wires an order source into the Temporal activities bundle.
func NewActivities(source orderports.OrderSource) *Activities {
	return &Activities{source: source}
}

// FetchOrders loads a page of orders. A nil batch from the source is
// normalized to an empty one.
func (a *Activities) FetchOrders(ctx context.Context, page int) (*orderports.Batch, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.source == nil {
		logger.Error("fetch orders activity not initialized", "page", page)
		return nil, errors.New("fetch orders activity not initialized")
	}
	logger.Info("FetchOrders activity started", "page", page)
	batch, err := a.source.FetchOrders(ctx, page)
	if err != nil {
		logger.Error("FetchOrders activity failed", "page", page, "error", err)
		return nil, err
	}
	if batch == nil {
		batch = &orderports.Batch{}
	}
	logger.Info("FetchOrders activity completed", "page", page, "size", len(batch.Orders))
	return batch, nil
}
