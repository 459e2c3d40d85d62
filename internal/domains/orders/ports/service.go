package ports

import (
	"context"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// PageRequest selects a 1-based page. Zero values fall back to the service defaults.
type PageRequest struct {
	Page     int
	PageSize int
}

// Page is one slice of a listing.
type Page struct {
	Orders   []domain.RawOrder
	Page     int
	PageSize int
	HasMore  bool
}

// Prioritized is a page of stored orders arranged by the priority comparator.
type Prioritized struct {
	Orders   []domain.RawOrder
	IDs      []int64
	Rejected []int64
	Page     int
	PageSize int
	HasMore  bool
}

// Service exposes order catalogue use cases to adapters.
type Service interface {
	ListOrders(ctx context.Context, req PageRequest) (*Page, error)
	GetOrder(ctx context.Context, id int64) (domain.RawOrder, error)
	ListByPriority(ctx context.Context, priority string, req PageRequest) (*Page, error)
	Prioritize(ctx context.Context, req PageRequest) (*Prioritized, error)
}
