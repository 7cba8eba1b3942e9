package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AdminCreateUserInput defines the data an admin supplies to create an account.
type AdminCreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.Role
}

// AdminUpdateUserInput defines the fields an admin may change on any account.
// An empty Password leaves the stored hash untouched.
type AdminUpdateUserInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.Role
}

// ProductInput defines the data for creating or updating a catalog product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Active      bool
}

// AdminUpdateProductInput carries the target product together with its new fields.
type AdminUpdateProductInput struct {
	ProductID uuid.UUID
	ProductInput
}

// AdminUsecase defines the administrative operations over users, the
// catalog, and orders. Authorization is enforced at the delivery layer;
// every method here assumes an admin caller.
type AdminUsecase interface {
	// ListUsers returns every account, ordered by creation time.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns one account.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// CreateUser creates an account with an explicit role.
	CreateUser(ctx context.Context, input *AdminCreateUserInput) (*entity.User, error)

	// UpdateUser modifies any account, including its role.
	UpdateUser(ctx context.Context, input *AdminUpdateUserInput) (*entity.User, error)

	// DeleteUser hard-deletes an account and its sessions. Accounts that
	// still have orders cannot be deleted.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// ListProducts returns the whole catalog including inactive products.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one product regardless of its active flag.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product's fields. Existing order lines are
	// unaffected: they keep the unit price captured at purchase time.
	UpdateProduct(ctx context.Context, input *AdminUpdateProductInput) (*entity.Product, error)

	// DeactivateProduct hides a product from the storefront without
	// touching order history.
	DeactivateProduct(ctx context.Context, productID uuid.UUID) error

	// RestoreProduct makes a previously deactivated product visible again.
	RestoreProduct(ctx context.Context, productID uuid.UUID) error

	// ListAllOrders returns every order in the system, most recent first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
}
