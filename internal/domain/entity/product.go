package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price is the current, authoritative unit
// price; checkout always reads it from here, never from client input.
//
// A product is never hard-deleted once an order line references it: admins
// flip Active off instead, which hides it from every non-admin read path
// while keeping historical orders resolvable.
type Product struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	Name        string          // Display name, shown in the catalog and on order lines.
	Description string          // Free-form description, searchable alongside the name.
	Price       decimal.Decimal // Current unit price. Non-negative.
	Active      bool            // Visibility flag. Inactive products are unlisted and unorderable.
	CreatedAt   time.Time       // Timestamp of when this product was created.
	UpdatedAt   time.Time       // Timestamp of the last modification to this product.
}
