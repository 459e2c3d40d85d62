package mapper

import (
	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// Order represents the transport-layer shape used by the HTTP handlers and client.
type Order struct {
	ID       int64
	Priority string
	Date     string
	Quantity int
}

// ToDomainOrder converts a transport order into the wire record the domain validates.
func ToDomainOrder(order Order) orderdomain.RawOrder {
	return orderdomain.RawOrder{
		ID:       order.ID,
		Priority: order.Priority,
		Date:     order.Date,
		Quantity: order.Quantity,
	}
}

// ToDomainOrders converts a batch, preserving order.
func ToDomainOrders(orders []Order) []orderdomain.RawOrder {
	result := make([]orderdomain.RawOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, ToDomainOrder(order))
	}
	return result
}

// FromDomainOrder converts a domain record to the transport representation.
func FromDomainOrder(order orderdomain.RawOrder) Order {
	return Order{
		ID:       order.ID,
		Priority: order.Priority,
		Date:     order.Date,
		Quantity: order.Quantity,
	}
}

// FromDomainOrders converts a batch, preserving order. It never returns nil.
func FromDomainOrders(orders []orderdomain.RawOrder) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
