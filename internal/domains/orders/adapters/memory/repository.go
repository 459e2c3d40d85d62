package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/tidwall/btree"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order store kept sorted by id in a B-tree.
type Repository struct {
	mu     sync.RWMutex
	orders *btree.Map[int64, domain.RawOrder]
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{orders: btree.NewMap[int64, domain.RawOrder](32)}
}

// Save stores the order, assigning the next free id when the id is zero.
func (r *Repository) Save(_ context.Context, order domain.RawOrder) (domain.RawOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(order)
}

func (r *Repository) SaveAll(_ context.Context, orders []domain.RawOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range orders {
		if _, err := r.saveLocked(order); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) ReplaceAll(_ context.Context, orders []domain.RawOrder) error {
	next := btree.NewMap[int64, domain.RawOrder](32)
	var nextID int64
	for _, order := range orders {
		if order.ID <= 0 {
			return errors.New("order id must be positive")
		}
		next.Set(order.ID, order)
		nextID = max(nextID, order.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders, r.nextID = next, nextID
	return nil
}

func (r *Repository) saveLocked(order domain.RawOrder) (domain.RawOrder, error) {
	if order.ID < 0 {
		return domain.RawOrder{}, errors.New("order id must not be negative")
	}
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	} else if order.ID > r.nextID {
		r.nextID = order.ID
	}
	r.orders.Set(order.ID, order)
	return order, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (domain.RawOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders.Get(id)
	if !ok {
		return domain.RawOrder{}, ports.ErrNotFound
	}
	return order, nil
}

func (r *Repository) List(_ context.Context, filter ports.ListFilter) ([]domain.RawOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := []domain.RawOrder{}
	skipped := 0
	r.orders.Scan(func(_ int64, order domain.RawOrder) bool {
		if filter.Priority != "" && domain.Priority(order.Priority) != filter.Priority {
			return true
		}
		if skipped < filter.Offset {
			skipped++
			return true
		}
		list = append(list, order)
		return filter.Limit <= 0 || len(list) < filter.Limit
	})
	return list, nil
}

func (r *Repository) Count(_ context.Context, priority domain.Priority) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if priority == "" {
		return r.orders.Len(), nil
	}
	n := 0
	r.orders.Scan(func(_ int64, order domain.RawOrder) bool {
		if domain.Priority(order.Priority) == priority {
			n++
		}
		return true
	})
	return n, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders.Delete(id); !ok {
		return ports.ErrNotFound
	}
	return nil
}
