package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutItem is one cart line submitted at checkout.
type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput defines the cart submitted by the authenticated user.
type CheckoutInput struct {
	UserID uuid.UUID
	Items  []CheckoutItem
}

// --- Output DTOs ---

// CheckoutOutput returns the order created by a successful checkout.
type CheckoutOutput struct {
	Order *entity.Order
}

// OrderUsecase defines checkout and order history operations.
type OrderUsecase interface {
	// Checkout converts the submitted cart into an order atomically:
	// either the order with all of its lines is created, or nothing is.
	// Prices are read from the catalog at execution time, never from the
	// client. Every cart line must reference an active product and carry
	// a positive quantity, otherwise the whole request fails.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)

	// ListOrders returns the caller's own orders, most recent first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one order. Customers may only read their own
	// orders; admins may read any order.
	GetOrder(ctx context.Context, requester Identity, orderID uuid.UUID) (*entity.Order, error)
}
