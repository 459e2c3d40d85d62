package simulator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

func TestGenerate_ProducesValidOrders(t *testing.T) {
	orders := NewGenerator(500, WithSeed(7)).Generate()
	require.Len(t, orders, 500)

	for i, raw := range orders {
		require.Equal(t, int64(i+1), raw.ID)
		require.Contains(t, Dates, raw.Date)
		require.GreaterOrEqual(t, raw.Quantity, 1)
		require.LessOrEqual(t, raw.Quantity, MaxQuantity)
		require.True(t, domain.FromRaw(raw).ValidateWith(nil))
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := NewGenerator(20, WithSeed(42)).Generate()
	b := NewGenerator(20, WithSeed(42)).Generate()
	require.Equal(t, a, b)
}

func TestSampleSize(t *testing.T) {
	g := NewGenerator(5)
	require.Equal(t, 5, g.SampleSize())
	require.Equal(t, 8, g.SetSampleSize(8))
	require.Len(t, g.Generate(), 8)
	require.Equal(t, 0, g.SetSampleSize(-3))
	require.Empty(t, g.Generate())
}
