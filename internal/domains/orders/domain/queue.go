package domain

import (
	"errors"
	"strings"
)

// ErrUnderflow is returned by Dequeue and Peek on an empty queue.
var ErrUnderflow = errors.New("underflow - priority queue is empty")

// Item is what a PriorityQueue can hold.
type Item interface {
	Identifier() int64
	String() string
}

// PriorityQueue keeps items ordered front-to-back by a Comparator. Insertion is
// a linear scan. It does no locking: callers sharing a queue across goroutines
// must serialize access themselves.
//
// The zero value is an empty queue.
type PriorityQueue[T Item] struct {
	items []T
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue[T Item]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

func (q *PriorityQueue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *PriorityQueue[T]) Size() int {
	return len(q.items)
}

// Enqueue inserts item immediately before the first element it outranks, or at
// the back when it outranks none.
func (q *PriorityQueue[T]) Enqueue(item T, compare Comparator[T]) {
	for i, existing := range q.items {
		if compare(item, existing) == FirstHigher {
			q.items = append(q.items, item)
			copy(q.items[i+1:], q.items[i:])
			q.items[i] = item
			return
		}
	}
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item.
func (q *PriorityQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrUnderflow
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, nil
}

// Peek returns the front item without removing it.
func (q *PriorityQueue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrUnderflow
	}
	return q.items[0], nil
}

// IDs returns the identifiers of the queued items front-to-back. It never
// returns nil.
func (q *PriorityQueue[T]) IDs() []int64 {
	ids := make([]int64, 0, len(q.items))
	for _, item := range q.items {
		ids = append(ids, item.Identifier())
	}
	return ids
}

// Items returns a copy of the queued items front-to-back.
func (q *PriorityQueue[T]) Items() []T {
	return append([]T(nil), q.items...)
}

// Clear empties the queue.
func (q *PriorityQueue[T]) Clear() {
	q.items = nil
}

func (q *PriorityQueue[T]) String() string {
	parts := make([]string, 0, len(q.items))
	for _, item := range q.items {
		parts = append(parts, item.String())
	}
	return "PriorityQueue[" + strings.Join(parts, ", ") + "]"
}
