package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the storefront-facing product reads.
// Only active products are ever visible through this interface; inactive
// products behave exactly like missing ones.
type CatalogUsecase interface {
	// ListProducts returns all active products, ordered by name.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one active product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// SearchProducts returns active products whose name or description
	// contains the query, case-insensitively. An empty query returns
	// the full active catalog.
	SearchProducts(ctx context.Context, query string) ([]*entity.Product, error)
}
