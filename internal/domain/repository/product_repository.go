package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the given
// identifier, or when it exists but is not visible to the caller.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for Product entities.
//
// "Visible" reads are the single place where the active flag is enforced:
// every non-admin read path goes through them, so an inactive product
// behaves exactly like a missing one for ordinary callers.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product regardless of its active flag.
	// Admin-only; ordinary read paths must use FindVisibleByID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindVisibleByID retrieves an active product, returning
	// ErrProductNotFound for missing and inactive products alike.
	FindVisibleByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListVisible returns all active products, ordered by name.
	ListVisible(ctx context.Context) ([]*entity.Product, error)

	// SearchVisible returns active products whose name or description
	// contains the query, case-insensitively, ordered by name.
	SearchVisible(ctx context.Context, query string) ([]*entity.Product, error)

	// ListAll returns every product including inactive ones. Admin-only.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// Update modifies an existing product's fields.
	Update(ctx context.Context, product *entity.Product) error

	// SetActive flips the visibility flag: soft delete and restore.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
