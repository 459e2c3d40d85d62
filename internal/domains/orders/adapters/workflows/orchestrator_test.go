package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/platform/temporal/workflows/orders"
)

type sourceFunc func(ctx context.Context, page int) (*ports.Batch, error)

func (f sourceFunc) FetchOrders(ctx context.Context, page int) (*ports.Batch, error) {
	return f(ctx, page)
}

func TestInlinePrioritization(t *testing.T) {
	var gotPage int
	source := sourceFunc(func(_ context.Context, page int) (*ports.Batch, error) {
		gotPage = page
		return &ports.Batch{Orders: []domain.RawOrder{
			{ID: 1, Priority: "L", Date: "2021-10-20", Quantity: 10},
			{ID: 2, Priority: "H", Date: "2021-10-20", Quantity: 10},
			{ID: 3, Priority: "H", Date: "2021-10-20", Quantity: 0},
		}}, nil
	})

	result, err := NewInlinePrioritization(source, nil).Prioritize(context.Background(), ports.PrioritizeInput{Page: 3})
	require.NoError(t, err)
	require.Equal(t, 3, gotPage)
	require.Equal(t, []int64{2, 1}, result.IDs)
	require.Equal(t, []int64{3}, result.Rejected)
	require.Equal(t, "PriorityQueue[Order(2, H, 2021-10-20, 10), Order(1, L, 2021-10-20, 10)]", result.Rendered)
}

func TestInlinePrioritization_SourceError(t *testing.T) {
	boom := errors.New("boom")
	source := sourceFunc(func(context.Context, int) (*ports.Batch, error) { return nil, boom })

	_, err := NewInlinePrioritization(source, nil).Prioritize(context.Background(), ports.PrioritizeInput{})
	require.ErrorIs(t, err, boom)
}

func TestTemporalPrioritization_RequiresClient(t *testing.T) {
	_, err := NewTemporalPrioritization(nil).Prioritize(context.Background(), ports.PrioritizeInput{})
	require.Error(t, err)
}

func tracedContext(t *testing.T) (context.Context, string) {
	t.Helper()
	traceID, err := oteltrace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := oteltrace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	spanCtx := oteltrace.NewSpanContext(oteltrace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: oteltrace.FlagsSampled})
	return oteltrace.ContextWithSpanContext(context.Background(), spanCtx), traceID.String()
}

func completedRun(result ports.PrioritizeResult) *mocks.WorkflowRun {
	run := &mocks.WorkflowRun{}
	run.On("Get", mock.Anything, mock.AnythingOfType("*ports.PrioritizeResult")).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*ports.PrioritizeResult) = result
		}).
		Return(nil)
	return run
}

func TestTemporalPrioritization_StartsWorkflowByRegisteredName(t *testing.T) {
	ctx, traceID := tracedContext(t)
	want := ports.PrioritizeResult{IDs: []int64{3, 1}, Rejected: []int64{2}, Rendered: "PriorityQueue[...]"}
	run := completedRun(want)

	temporalClient := &mocks.Client{}
	temporalClient.On("ExecuteWorkflow",
		mock.Anything,
		client.StartWorkflowOptions{ID: "order-prioritization-2-" + traceID, TaskQueue: orderworkflows.PrioritizationTaskQueue},
		orderworkflows.PrioritizationWorkflowName,
		orderworkflows.PrioritizationWorkflowInput{Page: 2, TraceID: traceID},
	).Return(run, nil)

	got, err := NewTemporalPrioritization(temporalClient).Prioritize(ctx, ports.PrioritizeInput{Page: 2})
	require.NoError(t, err)
	require.Equal(t, want, *got)
	temporalClient.AssertExpectations(t)
	run.AssertExpectations(t)
}

func TestTemporalPrioritization_ReattachesToStartedRun(t *testing.T) {
	ctx, traceID := tracedContext(t)
	workflowID := "order-prioritization-1-" + traceID
	run := completedRun(ports.PrioritizeResult{IDs: []int64{7}})

	temporalClient := &mocks.Client{}
	temporalClient.On("ExecuteWorkflow", mock.Anything, mock.Anything, orderworkflows.PrioritizationWorkflowName, mock.Anything).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "req-1", "run-1"))
	temporalClient.On("GetWorkflow", mock.Anything, workflowID, "run-1").Return(run)

	got, err := NewTemporalPrioritization(temporalClient).Prioritize(ctx, ports.PrioritizeInput{Page: 1})
	require.NoError(t, err)
	require.Equal(t, []int64{7}, got.IDs)
	temporalClient.AssertExpectations(t)
}

func TestTemporalPrioritization_StartFailure(t *testing.T) {
	boom := errors.New("frontend unavailable")
	temporalClient := &mocks.Client{}
	temporalClient.On("ExecuteWorkflow", mock.Anything, mock.Anything, orderworkflows.PrioritizationWorkflowName, mock.Anything).
		Return(nil, boom)

	_, err := NewTemporalPrioritization(temporalClient).Prioritize(context.Background(), ports.PrioritizeInput{})
	require.ErrorIs(t, err, boom)
	temporalClient.AssertNotCalled(t, "GetWorkflow", mock.Anything, mock.Anything, mock.Anything)
}
