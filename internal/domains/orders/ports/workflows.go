package ports

import (
	"context"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// Batch is one page of orders fetched from the orders API.
type Batch struct {
	Orders  []domain.RawOrder
	HasMore bool
}

// OrderSource fetches order batches from wherever they live, usually the HTTP API.
type OrderSource interface {
	FetchOrders(ctx context.Context, page int) (*Batch, error)
}

// PrioritizeInput selects the batch to prioritize.
type PrioritizeInput struct {
	Page int
}

// PrioritizeResult is the outcome of inserting a batch into a priority queue.
type PrioritizeResult struct {
	IDs      []int64
	Rejected []int64
	Rendered string
}

// WorkflowOrchestrator runs batch prioritization, durably or inline.
type WorkflowOrchestrator interface {
	Prioritize(ctx context.Context, input PrioritizeInput) (*PrioritizeResult, error)
}
