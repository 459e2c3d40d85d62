package application

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

// DefaultPageSize is the listing page size when none is configured.
const DefaultPageSize = 50

// Service orchestrates order catalogue use cases.
type Service struct {
	repo     ports.Repository
	pageSize int
	logger   *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithPageSize overrides DefaultPageSize. Non-positive values are ignored.
func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithLogger sets the logger used for validation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, pageSize: DefaultPageSize, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) ListOrders(ctx context.Context, req ports.PageRequest) (*ports.Page, error) {
	return s.list(ctx, "", req)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (domain.RawOrder, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPriority(ctx context.Context, priority string, req ports.PageRequest) (*ports.Page, error) {
	p, err := domain.ParsePriority(priority)
	if err != nil {
		return nil, mapError(err)
	}
	return s.list(ctx, p, req)
}

// Prioritize arranges one page of stored orders with a queue built for this
// call only, so concurrent requests never share one.
func (s *Service) Prioritize(ctx context.Context, req ports.PageRequest) (*ports.Prioritized, error) {
	page, err := s.list(ctx, "", req)
	if err != nil {
		return nil, err
	}
	q := domain.NewPriorityQueue[*domain.Order]()
	report := AddToQueue(page.Orders, q, s.logger)
	ordered := make([]domain.RawOrder, 0, q.Size())
	for _, order := range q.Items() {
		ordered = append(ordered, order.Raw())
	}
	return &ports.Prioritized{
		Orders:   ordered,
		IDs:      q.IDs(),
		Rejected: report.RejectedIDs(),
		Page:     page.Page,
		PageSize: page.PageSize,
		HasMore:  page.HasMore,
	}, nil
}

func (s *Service) list(ctx context.Context, priority domain.Priority, req ports.PageRequest) (*ports.Page, error) {
	page, size, err := s.normalize(req)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, priority)
	if err != nil {
		return nil, err
	}
	// Pages whose offset would overflow lie past any stored total.
	offset := math.MaxInt
	if page-1 <= (math.MaxInt-1)/size {
		offset = (page - 1) * size
	}
	orders := []domain.RawOrder{}
	if offset < total {
		orders, err = s.repo.List(ctx, ports.ListFilter{Priority: priority, Offset: offset, Limit: size})
		if err != nil {
			return nil, err
		}
	}
	return &ports.Page{
		Orders:   orders,
		Page:     page,
		PageSize: size,
		HasMore:  offset+len(orders) < total,
	}, nil
}

func (s *Service) normalize(req ports.PageRequest) (int, int, error) {
	page, size := req.Page, req.PageSize
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = s.pageSize
	}
	if page < 0 || size < 0 {
		return 0, 0, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidPage, req.Page, req.PageSize)
	}
	return page, size, nil
}

var _ ports.Service = (*Service)(nil)
