package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the order dataset in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Schema is owned by the
// migrations package; caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps an order to the orders table. The date stays in its wire
// form so listings echo exactly what was stored.
type orderRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Priority  string    `gorm:"column:priority;type:varchar(1);index"`
	OrderDate string    `gorm:"column:order_date;type:varchar(32)"`
	Quantity  int       `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Save upserts an order by id.
func (r *Repository) Save(ctx context.Context, order domain.RawOrder) (domain.RawOrder, error) {
	if err := r.ensureDB(); err != nil {
		return domain.RawOrder{}, err
	}
	record := toRecord(order)
	if err := r.upsert(r.db.WithContext(ctx), []orderRecord{record}); err != nil {
		return domain.RawOrder{}, err
	}
	return r.GetByID(ctx, record.ID)
}

// SaveAll upserts a batch in one transaction.
func (r *Repository) SaveAll(ctx context.Context, orders []domain.RawOrder) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}
	records := make([]orderRecord, 0, len(orders))
	for _, order := range orders {
		records = append(records, toRecord(order))
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.upsert(tx, records)
	})
}

// ReplaceAll deletes every stored order and inserts orders in one transaction.
func (r *Repository) ReplaceAll(ctx context.Context, orders []domain.RawOrder) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	records := make([]orderRecord, 0, len(orders))
	for _, order := range orders {
		records = append(records, toRecord(order))
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&orderRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return r.upsert(tx, records)
	})
}

func (r *Repository) upsert(db *gorm.DB, records []orderRecord) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"priority",
			"order_date",
			"quantity",
			"updated_at",
		}),
	}).CreateInBatches(&records, 100).Error
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (domain.RawOrder, error) {
	if err := r.ensureDB(); err != nil {
		return domain.RawOrder{}, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RawOrder{}, ports.ErrNotFound
		}
		return domain.RawOrder{}, err
	}
	return record.toDomain(), nil
}

// List returns orders ordered by id, honouring the filter.
func (r *Repository) List(ctx context.Context, filter ports.ListFilter) ([]domain.RawOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.scoped(ctx, filter.Priority).Order("id ASC")
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.RawOrder, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Count returns the number of orders of the priority class, or all orders when empty.
func (r *Repository) Count(ctx context.Context, priority domain.Priority) (int, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var n int64
	if err := r.scoped(ctx, priority).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

// Delete removes an order by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) scoped(ctx context.Context, priority domain.Priority) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&orderRecord{})
	if priority != "" {
		query = query.Where("priority = ?", string(priority))
	}
	return query
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order domain.RawOrder) orderRecord {
	return orderRecord{
		ID:        order.ID,
		Priority:  order.Priority,
		OrderDate: order.Date,
		Quantity:  order.Quantity,
	}
}

func (r orderRecord) toDomain() domain.RawOrder {
	return domain.RawOrder{
		ID:       r.ID,
		Priority: r.Priority,
		Date:     r.OrderDate,
		Quantity: r.Quantity,
	}
}
