package orders

import (
	"go.temporal.io/sdk/workflow"

	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-orders-api/internal/platform/temporal/sequences"
)

const (
	// PrioritizationWorkflowName is the public identifier for registering the workflow.
	PrioritizationWorkflowName = "orders.workflows.Prioritization"
	// PrioritizationTaskQueue is the queue consumed by the worker processing order workflows.
	PrioritizationTaskQueue = "ORDER_PRIORITIZATION"
)

// PrioritizationWorkflowInput selects the batch to prioritize.
type PrioritizationWorkflowInput struct {
	Page    int
	TraceID string
}

// PrioritizationWorkflow fetches one batch and inserts its valid orders into a
// fresh priority queue. Validation and insertion are pure, so they run in the
// workflow body.
func PrioritizationWorkflow(ctx workflow.Context, input PrioritizationWorkflowInput) (*orderports.PrioritizeResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("PrioritizationWorkflow started", withTraceID(input.TraceID, "page", input.Page)...)
	batch, err := sequences.RunOrderFetchSequence(ctx, input.Page)
	if err != nil {
		logger.Error("PrioritizationWorkflow failed", withTraceID(input.TraceID, "page", input.Page, "error", err)...)
		return nil, err
	}

	queue := domain.NewPriorityQueue[*domain.Order]()
	report := orderapp.AddToQueue(batch.Orders, queue, nil)
	for _, rejection := range report.Rejected {
		logger.Warn("order rejected, not added to priority queue", "orderId", rejection.ID, "reason", rejection.Reason)
	}

	result := &orderports.PrioritizeResult{
		IDs:      queue.IDs(),
		Rejected: report.RejectedIDs(),
		Rendered: queue.String(),
	}
	logger.Info("PrioritizationWorkflow completed",
		withTraceID(input.TraceID, "enqueued", len(result.IDs), "rejected", len(result.Rejected))...)
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
