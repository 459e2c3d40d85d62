package domain

import "cmp"

// Precedence names the operand a Comparator ranks higher. There is no tie value.
type Precedence int

const (
	FirstHigher  Precedence = 1
	SecondHigher Precedence = 2
)

// Comparator decides which of two items has the higher priority.
type Comparator[T any] func(a, b T) Precedence

// KeyOrder is one level of a tie-break chain. It returns a negative value when
// a ranks higher, a positive value when b ranks higher and zero on a tie.
type KeyOrder[T any] func(a, b T) int

// Ascending ranks the smaller key higher.
func Ascending[T any, K cmp.Ordered](key func(T) K) KeyOrder[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Descending ranks the larger key higher.
func Descending[T any, K cmp.Ordered](key func(T) K) KeyOrder[T] {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}

// Chain composes levels into a Comparator. The first level that discriminates
// wins. When every level ties the second operand wins, so a final level that
// compares a unique key with strict less-than keeps the order total.
func Chain[T any](levels ...KeyOrder[T]) Comparator[T] {
	return func(a, b T) Precedence {
		for _, level := range levels {
			if c := level(a, b); c != 0 {
				if c < 0 {
					return FirstHigher
				}
				return SecondHigher
			}
		}
		return SecondHigher
	}
}

// olderFirst ranks the earlier calendar date higher.
func olderFirst(a, b *Order) int {
	return a.Date().Compare(b.Date())
}

var orderChain = Chain[*Order](
	Descending(func(o *Order) int { return o.Priority.Rank() }),
	olderFirst,
	Descending(func(o *Order) int { return o.Quantity }),
	Ascending(func(o *Order) int64 { return o.ID }),
)

// CompareOrders ranks two validated orders: higher priority class, then older
// date, then larger quantity, then smaller id. Orders that fail validation
// must not be passed in.
func CompareOrders(a, b *Order) Precedence {
	return orderChain(a, b)
}
