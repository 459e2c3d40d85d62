package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) ListOrders(ctx context.Context, req orderports.PageRequest) (*orderports.Page, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.ListOrders",
		trace.WithAttributes(attribute.Int("page", req.Page), attribute.Int("page_size", req.PageSize)))
	defer span.End()

	result, err := s.inner.ListOrders(ctx, req)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.Int("page", req.Page))
	}
	s.recordPage(ctx, span, "", result)
	s.logInfo(ctx, "orders listed", slog.Int("page", result.Page), slog.Int("size", len(result.Orders)), slog.Bool("has_more", result.HasMore))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (orderdomain.RawOrder, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	s.metrics.recordLookup(ctx, err == nil)
	if errors.Is(err, orderports.ErrNotFound) {
		span.SetAttributes(attribute.Bool("order.found", false))
		s.logInfo(ctx, "order not found", slog.Int64("order.id", id))
		return orderdomain.RawOrder{}, err
	}
	if err != nil {
		return orderdomain.RawOrder{}, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	s.logInfo(ctx, "order loaded", slog.Int64("order.id", result.ID), slog.String("priority", result.Priority))
	return result, nil
}

func (s *Service) ListByPriority(ctx context.Context, priority string, req orderports.PageRequest) (*orderports.Page, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.ListByPriority",
		trace.WithAttributes(attribute.String("order.priority", priority), attribute.Int("page", req.Page)))
	defer span.End()

	result, err := s.inner.ListByPriority(ctx, priority, req)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by priority", slog.String("priority", priority))
	}
	s.recordPage(ctx, span, priority, result)
	s.logInfo(ctx, "orders listed by priority", slog.String("priority", priority), slog.Int("size", len(result.Orders)))
	return result, nil
}

func (s *Service) Prioritize(ctx context.Context, req orderports.PageRequest) (*orderports.Prioritized, error) {
	ctx, span := s.tracer.Start(ctx, "OrdersService.Prioritize", trace.WithAttributes(attribute.Int("page", req.Page)))
	defer span.End()

	result, err := s.inner.Prioritize(ctx, req)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to prioritize orders", slog.Int("page", req.Page))
	}
	span.SetAttributes(attribute.Int("orders.enqueued", len(result.IDs)), attribute.Int("orders.rejected", len(result.Rejected)))
	s.metrics.recordPrioritized(ctx, len(result.IDs), len(result.Rejected))
	s.logInfo(ctx, "orders prioritized", slog.Int("enqueued", len(result.IDs)), slog.Int("rejected", len(result.Rejected)))
	return result, nil
}

func (s *Service) recordPage(ctx context.Context, span trace.Span, priority string, page *orderports.Page) {
	span.SetAttributes(attribute.Int("orders.size", len(page.Orders)), attribute.Bool("orders.has_more", page.HasMore))
	s.metrics.recordListed(ctx, priority, len(page.Orders))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersListed metric.Int64Counter
	lookups      metric.Int64Counter
	enqueued     metric.Int64Counter
	rejected     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersListed, _ := m.Int64Counter("orders.service.listed", metric.WithDescription("Number of orders returned by listings"))
	lookups, _ := m.Int64Counter("orders.service.lookups", metric.WithDescription("Number of single order lookups"))
	enqueued, _ := m.Int64Counter("orders.prioritizer.enqueued", metric.WithDescription("Number of orders inserted into a priority queue"))
	rejected, _ := m.Int64Counter("orders.prioritizer.rejected", metric.WithDescription("Number of orders rejected by validation"))
	return serviceMetrics{ordersListed: ordersListed, lookups: lookups, enqueued: enqueued, rejected: rejected}
}

func (m serviceMetrics) recordListed(ctx context.Context, priority string, n int) {
	if m.ordersListed != nil {
		m.ordersListed.Add(ctx, int64(n), metric.WithAttributes(attribute.String("order.priority", priority)))
	}
}

func (m serviceMetrics) recordLookup(ctx context.Context, found bool) {
	if m.lookups != nil {
		m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("found", found)))
	}
}

func (m serviceMetrics) recordPrioritized(ctx context.Context, enqueued, rejected int) {
	if m.enqueued != nil {
		m.enqueued.Add(ctx, int64(enqueued))
	}
	if m.rejected != nil {
		m.rejected.Add(ctx, int64(rejected))
	}
}

var _ orderports.Service = (*Service)(nil)
