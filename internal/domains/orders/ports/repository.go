package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// ListFilter narrows and slices a listing. A zero Limit means no limit and an
// empty Priority matches every class.
type ListFilter struct {
	Priority domain.Priority
	Offset   int
	Limit    int
}

// Repository persists the order dataset served by the API. Listings are
// ordered by id ascending.
type Repository interface {
	Save(ctx context.Context, order domain.RawOrder) (domain.RawOrder, error)
	SaveAll(ctx context.Context, orders []domain.RawOrder) error
	// ReplaceAll swaps the whole dataset for orders.
	ReplaceAll(ctx context.Context, orders []domain.RawOrder) error
	GetByID(ctx context.Context, id int64) (domain.RawOrder, error)
	List(ctx context.Context, filter ListFilter) ([]domain.RawOrder, error)
	Count(ctx context.Context, priority domain.Priority) (int, error)
	Delete(ctx context.Context, id int64) error
}
