package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an immutable purchase record. Amount is the denormalized sum of
// its lines' costs at creation time; no exposed operation updates or
// deletes an order after checkout commits it.
type Order struct {
	ID        uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	UserID    uuid.UUID       // The owning user. An order belongs to exactly one user.
	Amount    decimal.Decimal // Total amount charged, fixed at checkout time.
	Lines     []*OrderLine    // The line items, created in the same transaction as the order.
	CreatedAt time.Time       // Timestamp of when this order was placed.
}

// OrderLine is one (product, quantity) entry within an order. UnitPrice is
// the price snapshot captured at purchase time, so order history does not
// drift when the catalog price later changes.
type OrderLine struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the line.
	OrderID     uuid.UUID       // The owning order. A line is never created standalone.
	ProductID   uuid.UUID       // The referenced product. Read-only reference.
	ProductName string          // Product name resolved on read; not persisted on the line.
	UnitPrice   decimal.Decimal // Unit price at purchase time.
	Quantity    int             // Ordered quantity. Always a positive integer.
}

// Cost returns the line's contribution to the order total.
func (l *OrderLine) Cost() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineTotal recomputes the order amount from its lines. Checkout persists
// this value as Amount; history endpoints can use it to cross-check.
func (o *Order) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Cost())
	}

	return total
}
