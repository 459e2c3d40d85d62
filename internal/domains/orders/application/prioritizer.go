package application

import (
	"log/slog"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// Rejection records an order that failed validation.
type Rejection struct {
	ID     int64
	Reason string
}

// Report summarizes one AddToQueue call.
type Report struct {
	Accepted []int64
	Rejected []Rejection
}

// RejectedIDs returns the ids of the rejected orders in input order.
func (r Report) RejectedIDs() []int64 {
	ids := make([]int64, 0, len(r.Rejected))
	for _, rej := range r.Rejected {
		ids = append(ids, rej.ID)
	}
	return ids
}

// AddToQueue validates every record and enqueues the valid ones with
// domain.CompareOrders. Invalid records are skipped and reported; they never
// reach the comparator. Rejections are logged on logger unless it is nil.
func AddToQueue(records []domain.RawOrder, q *domain.PriorityQueue[*domain.Order], logger *slog.Logger) Report {
	report := Report{Accepted: make([]int64, 0, len(records))}
	for _, record := range records {
		order := domain.FromRaw(record)
		if !order.ValidateWith(logger) {
			report.Rejected = append(report.Rejected, Rejection{ID: record.ID, Reason: order.Check().Error()})
			continue
		}
		q.Enqueue(order, domain.CompareOrders)
		report.Accepted = append(report.Accepted, record.ID)
	}
	return report
}
