package workflows

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalPrioritization)(nil)
	_ ports.WorkflowOrchestrator = (*InlinePrioritization)(nil)
)

// TemporalPrioritization runs batch prioritization on a Temporal cluster.
type TemporalPrioritization struct {
	client    client.Client
	taskQueue string
}

// NewTemporalPrioritization wires a Temporal client into the orchestrator.
func NewTemporalPrioritization(c client.Client) *TemporalPrioritization {
	return &TemporalPrioritization{client: c, taskQueue: orderworkflows.PrioritizationTaskQueue}
}

// Prioritize starts the prioritization workflow by its registered name and
// waits for its result.
func (o *TemporalPrioritization) Prioritize(ctx context.Context, input ports.PrioritizeInput) (*ports.PrioritizeResult, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal prioritization not configured")
	}
	workflowID := fmt.Sprintf("order-prioritization-%d-%s", input.Page, workflowTraceComponent(ctx))
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.PrioritizationWorkflowName,
		orderworkflows.PrioritizationWorkflowInput{Page: input.Page, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		// Same page within the same trace: wait on the run already in flight.
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var result ports.PrioritizeResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InlinePrioritization fetches and prioritizes in-process, for tests or when
// no Temporal cluster is reachable.
type InlinePrioritization struct {
	source ports.OrderSource
	logger *slog.Logger
}

// NewInlinePrioritization wraps an order source for synchronous execution.
// Rejected orders are logged on logger; nil silences them.
func NewInlinePrioritization(source ports.OrderSource, logger *slog.Logger) *InlinePrioritization {
	return &InlinePrioritization{source: source, logger: logger}
}

// Prioritize fetches one batch and inserts it into a fresh priority queue.
func (o *InlinePrioritization) Prioritize(ctx context.Context, input ports.PrioritizeInput) (*ports.PrioritizeResult, error) {
	if o == nil || o.source == nil {
		return nil, errors.New("inline prioritization not configured")
	}
	batch, err := o.source.FetchOrders(ctx, input.Page)
	if err != nil {
		return nil, err
	}
	queue := domain.NewPriorityQueue[*domain.Order]()
	var records []domain.RawOrder
	if batch != nil {
		records = batch.Orders
	}
	report := orderapp.AddToQueue(records, queue, o.logger)
	return &ports.PrioritizeResult{
		IDs:      queue.IDs(),
		Rejected: report.RejectedIDs(),
		Rendered: queue.String(),
	}, nil
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
