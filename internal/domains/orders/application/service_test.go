package application

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	ordermemory "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

func newSeededService(t *testing.T, orders []domain.RawOrder, opts ...Option) *Service {
	t.Helper()
	repo := ordermemory.NewRepository()
	require.NoError(t, repo.SaveAll(context.Background(), orders))
	return NewService(repo, append([]Option{WithLogger(nil)}, opts...)...)
}

func numbered(n int) []domain.RawOrder {
	orders := make([]domain.RawOrder, 0, n)
	for i := 1; i <= n; i++ {
		p := domain.Priorities()[i%3]
		orders = append(orders, domain.RawOrder{ID: int64(i), Priority: string(p), Date: "2021-10-20", Quantity: i})
	}
	return orders
}

func TestListOrders_DefaultPage(t *testing.T) {
	svc := newSeededService(t, numbered(20))

	page, err := svc.ListOrders(context.Background(), ports.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Orders, 20)
	require.Equal(t, 1, page.Page)
	require.False(t, page.HasMore)
}

func TestListOrders_Paginates(t *testing.T) {
	svc := newSeededService(t, numbered(12), WithPageSize(5))
	ctx := context.Background()

	first, err := svc.ListOrders(ctx, ports.PageRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, first.Orders, 5)
	require.True(t, first.HasMore)

	last, err := svc.ListOrders(ctx, ports.PageRequest{Page: 3})
	require.NoError(t, err)
	require.Len(t, last.Orders, 2)
	require.Equal(t, int64(11), last.Orders[0].ID)
	require.False(t, last.HasMore)

	beyond, err := svc.ListOrders(ctx, ports.PageRequest{Page: 9})
	require.NoError(t, err)
	require.Empty(t, beyond.Orders)
	require.False(t, beyond.HasMore)
}

func TestListOrders_InvalidPage(t *testing.T) {
	svc := newSeededService(t, numbered(3))

	_, err := svc.ListOrders(context.Background(), ports.PageRequest{Page: -1})
	require.ErrorIs(t, err, ErrInvalidPage)
}

func TestListOrders_HugePageIsPastTheEnd(t *testing.T) {
	svc := newSeededService(t, numbered(20))

	for _, page := range []int{276701161105643275, math.MaxInt} {
		result, err := svc.ListOrders(context.Background(), ports.PageRequest{Page: page})
		require.NoError(t, err)
		require.Empty(t, result.Orders, "page %d", page)
		require.False(t, result.HasMore, "page %d", page)
		require.Equal(t, page, result.Page)
	}

	result, err := svc.ListOrders(context.Background(), ports.PageRequest{Page: math.MaxInt, PageSize: 1})
	require.NoError(t, err)
	require.Empty(t, result.Orders)
}

func TestListByPriority(t *testing.T) {
	svc := newSeededService(t, numbered(9))
	ctx := context.Background()

	page, err := svc.ListByPriority(ctx, "H", ports.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Orders, 3)
	for _, order := range page.Orders {
		require.Equal(t, "H", order.Priority)
	}

	_, err = svc.ListByPriority(ctx, "Z", ports.PageRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestGetOrder(t *testing.T) {
	svc := newSeededService(t, numbered(3))

	order, err := svc.GetOrder(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), order.ID)

	_, err = svc.GetOrder(context.Background(), 22)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPrioritize_OrdersPageAndReportsRejects(t *testing.T) {
	svc := newSeededService(t, []domain.RawOrder{
		{ID: 1, Priority: "H", Date: "2021-10-20", Quantity: 10},
		{ID: 2, Priority: "M", Date: "2021-10-19", Quantity: 50},
		{ID: 3, Priority: "H", Date: "2021-10-19", Quantity: 5},
		{ID: 4, Priority: "X", Date: "2021-10-19", Quantity: 5},
		{ID: 5, Priority: "L", Date: "19/10/2021", Quantity: 5},
	})

	result, err := svc.Prioritize(context.Background(), ports.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2}, result.IDs)
	require.Equal(t, []int64{4, 5}, result.Rejected)
	require.Len(t, result.Orders, 3)
	require.Equal(t, "2021-10-19", result.Orders[0].Date)
}
