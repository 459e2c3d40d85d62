package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	ordermemory "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/memory"
	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

func newInstrumented(t *testing.T) (ports.Service, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	repo := ordermemory.NewRepository()
	require.NoError(t, repo.SaveAll(context.Background(), []domain.RawOrder{
		{ID: 1, Priority: "H", Date: "2021-10-20", Quantity: 10},
		{ID: 2, Priority: "M", Date: "bad", Quantity: 50},
	}))

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	svc := New(orderapp.NewService(repo, orderapp.WithLogger(nil)),
		WithTracer(tp.Tracer("test")),
		WithMeter(mp.Meter("test")),
	)
	return svc, recorder, reader
}

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestService_PrioritizeRecordsSpanAndCounters(t *testing.T) {
	svc, recorder, reader := newInstrumented(t)

	result, err := svc.Prioritize(context.Background(), ports.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, []int64{1}, result.IDs)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "OrdersService.Prioritize", spans[0].Name())
	require.Equal(t, int64(1), counterTotal(t, reader, "orders.prioritizer.enqueued"))
	require.Equal(t, int64(1), counterTotal(t, reader, "orders.prioritizer.rejected"))
}

func TestService_GetOrderMissIsNotASpanError(t *testing.T) {
	svc, recorder, reader := newInstrumented(t)

	_, err := svc.GetOrder(context.Background(), 404)
	require.ErrorIs(t, err, ports.ErrNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Unset, spans[0].Status().Code)
	require.Empty(t, spans[0].Events())
	require.Equal(t, int64(1), counterTotal(t, reader, "orders.service.lookups"))
}

func TestService_InvalidPriorityMarksSpanOnError(t *testing.T) {
	svc, recorder, _ := newInstrumented(t)

	_, err := svc.ListByPriority(context.Background(), "X", ports.PageRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidPriority)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestService_ListOrdersCountsListed(t *testing.T) {
	svc, _, reader := newInstrumented(t)

	page, err := svc.ListOrders(context.Background(), ports.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	require.Equal(t, int64(2), counterTotal(t, reader, "orders.service.listed"))
}
