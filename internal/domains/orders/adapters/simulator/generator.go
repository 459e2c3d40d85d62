// Package simulator generates synthetic order datasets for the demo API.
package simulator

import (
	"math/rand/v2"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// Dates are the calendar dates generated orders are spread across.
var Dates = []string{"2021-10-19", "2021-10-20", "2021-10-21", "2021-10-22"}

// MaxQuantity is the largest generated quantity.
const MaxQuantity = 100

// Generator produces n orders with ids 1..n and uniformly drawn priority,
// date and quantity.
type Generator struct {
	n   int
	rng *rand.Rand
}

type Option func(*Generator)

// WithSeed makes the generated dataset reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	}
}

func NewGenerator(n int, opts ...Option) *Generator {
	g := &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	g.SetSampleSize(n)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate returns a fresh dataset.
func (g *Generator) Generate() []domain.RawOrder {
	priorities := domain.Priorities()
	orders := make([]domain.RawOrder, 0, g.n)
	for i := 1; i <= g.n; i++ {
		orders = append(orders, domain.RawOrder{
			ID:       int64(i),
			Priority: string(priorities[g.rng.IntN(len(priorities))]),
			Date:     Dates[g.rng.IntN(len(Dates))],
			Quantity: g.rng.IntN(MaxQuantity) + 1,
		})
	}
	return orders
}

func (g *Generator) SampleSize() int {
	return g.n
}

// SetSampleSize changes the number of orders generated and returns it.
// Negative sizes are clamped to zero.
func (g *Generator) SetSampleSize(n int) int {
	g.n = max(n, 0)
	return g.n
}
