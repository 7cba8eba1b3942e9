package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the given identifier.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for Order entities.
// Orders are append-only: there is no update or delete operation.
type OrderRepository interface {
	// Create persists an order header together with all of its lines.
	// Must be called through a transaction-bound repository so the
	// header and lines commit or roll back as one unit.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves one order with its lines and resolved product
	// names.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns one user's orders, most recent first, each with
	// its lines and resolved product names.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAll returns every order, most recent first. Admin-only.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// CountByUser reports how many orders reference the given user.
	// Used to restrict hard-deleting users with order history.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
