package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the orders schema.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&orderRecord{})
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Priority  string    `gorm:"column:priority;type:varchar(1);index"`
	OrderDate string    `gorm:"column:order_date;type:varchar(32)"`
	Quantity  int       `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }
