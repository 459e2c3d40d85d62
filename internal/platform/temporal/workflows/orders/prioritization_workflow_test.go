package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/go-gin-orders-api/internal/platform/temporal/activities/orders"
)

type staticSource struct {
	batch *orderports.Batch
	err   error
}

func (s staticSource) FetchOrders(context.Context, int) (*orderports.Batch, error) {
	return s.batch, s.err
}

func newEnv(t *testing.T, source orderports.OrderSource) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	acts := orderactivities.NewActivities(source)
	env.RegisterActivityWithOptions(acts.FetchOrders, activity.RegisterOptions{Name: orderactivities.FetchOrdersActivityName})
	return env
}

func TestPrioritizationWorkflow_OrdersBatch(t *testing.T) {
	env := newEnv(t, staticSource{batch: &orderports.Batch{Orders: []domain.RawOrder{
		{ID: 1, Priority: "H", Date: "2021-10-20", Quantity: 10},
		{ID: 2, Priority: "M", Date: "2021-10-19", Quantity: 50},
		{ID: 3, Priority: "H", Date: "2021-10-19", Quantity: 5},
		{ID: 4, Priority: "H", Date: "19-10-2021", Quantity: 5},
	}}})

	env.ExecuteWorkflow(PrioritizationWorkflow, PrioritizationWorkflowInput{Page: 1})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var result orderports.PrioritizeResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.Equal(t, []int64{3, 1, 2}, result.IDs)
	require.Equal(t, []int64{4}, result.Rejected)
	require.Contains(t, result.Rendered, "PriorityQueue[Order(3, H, 2021-10-19, 5)")
}

func TestPrioritizationWorkflow_EmptyBatch(t *testing.T) {
	env := newEnv(t, staticSource{})

	env.ExecuteWorkflow(PrioritizationWorkflow, PrioritizationWorkflowInput{})

	require.NoError(t, env.GetWorkflowError())
	var result orderports.PrioritizeResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.Empty(t, result.IDs)
	require.Equal(t, "PriorityQueue[]", result.Rendered)
}

func TestPrioritizationWorkflow_FetchFailure(t *testing.T) {
	env := newEnv(t, staticSource{err: errors.New("orders API unavailable")})

	env.ExecuteWorkflow(PrioritizationWorkflow, PrioritizationWorkflowInput{Page: 2})

	require.True(t, env.IsWorkflowCompleted())
	require.ErrorContains(t, env.GetWorkflowError(), "orders API unavailable")
}
