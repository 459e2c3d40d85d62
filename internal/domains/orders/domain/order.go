package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DateLayout is the ISO-8601 calendar date accepted for order dates.
const DateLayout = time.DateOnly

var (
	ErrInvalidPriority = errors.New("order priority is invalid")
	ErrInvalidDate     = errors.New("order date is not an ISO-8601 calendar date")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// RawOrder is an order record as it arrives on the wire, before validation.
type RawOrder struct {
	ID       int64  `json:"id"`
	Priority string `json:"priority"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// Order is a single order. It is only eligible for ordering once Validate has
// succeeded; after that the value is not mutated again.
type Order struct {
	ID       int64
	Priority Priority
	Quantity int

	rawDate   string
	date      time.Time
	validated bool
}

// NewOrder builds an unvalidated order from the four raw fields.
func NewOrder(id int64, priority string, date string, quantity int) *Order {
	return &Order{
		ID:       id,
		Priority: Priority(priority),
		Quantity: quantity,
		rawDate:  date,
	}
}

// FromRaw builds an unvalidated order from a wire record.
func FromRaw(raw RawOrder) *Order {
	return NewOrder(raw.ID, raw.Priority, raw.Date, raw.Quantity)
}

// Raw returns the wire representation of the order.
func (o *Order) Raw() RawOrder {
	return RawOrder{
		ID:       o.ID,
		Priority: string(o.Priority),
		Date:     o.DateString(),
		Quantity: o.Quantity,
	}
}

// Date returns the parsed calendar date. It is the zero time until the order
// has been validated.
func (o *Order) Date() time.Time {
	return o.date
}

// DateString returns the date as YYYY-MM-DD once validated, otherwise the raw input.
func (o *Order) DateString() string {
	if o.validated {
		return o.date.Format(DateLayout)
	}
	return o.rawDate
}

// Validated reports whether Validate has accepted the order.
func (o *Order) Validated() bool {
	return o.validated
}

// Check runs the validation rules and, on success, replaces the raw date with
// the parsed calendar date. It returns the first failing rule.
func (o *Order) Check() error {
	if o.validated {
		return nil
	}
	if !o.Priority.Valid() {
		return ErrInvalidPriority
	}
	date, err := time.Parse(DateLayout, o.rawDate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, o.rawDate)
	}
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	o.date = date
	o.validated = true
	return nil
}

// Validate reports whether the order may be compared and enqueued. Rejections
// are logged on the default logger.
func (o *Order) Validate() bool {
	return o.ValidateWith(slog.Default())
}

// ValidateWith is Validate with an explicit logger. A nil logger discards the
// rejection diagnostic.
func (o *Order) ValidateWith(logger *slog.Logger) bool {
	err := o.Check()
	if err == nil {
		return true
	}
	if logger != nil {
		logger.Warn("order rejected, not added to priority queue",
			slog.Int64("order.id", o.ID),
			slog.String("reason", err.Error()),
		)
	}
	return false
}

// Identifier returns the order id.
func (o *Order) Identifier() int64 {
	return o.ID
}

func (o *Order) String() string {
	return fmt.Sprintf("Order(%d, %s, %s, %d)", o.ID, o.Priority, o.DateString(), o.Quantity)
}
