package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return catalogServiceFixtures{
		service:     NewCatalogService(productRepo, logger),
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Coaster", Price: decimal.RequireFromString("5.00"), Active: true},
		{ID: uuid.New(), Name: "Mug", Price: decimal.RequireFromString("10.00"), Active: true},
	}

	fx.productRepo.EXPECT().ListVisible(ctx).Return(products, nil)

	got, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	// Inactive products surface the same way as missing ones.
	fx.productRepo.EXPECT().FindVisibleByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	got, err := fx.service.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_SearchProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	matches := []*entity.Product{
		{ID: uuid.New(), Name: "Ceramic Mug", Price: decimal.RequireFromString("10.00"), Active: true},
	}

	fx.productRepo.EXPECT().SearchVisible(ctx, "mug").Return(matches, nil)

	got, err := fx.service.SearchProducts(ctx, "  mug  ")

	require.NoError(t, err)
	assert.Equal(t, matches, got)
}

func TestCatalogService_SearchProducts_BlankQueryListsAll(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Mug", Price: decimal.RequireFromString("10.00"), Active: true},
	}

	fx.productRepo.EXPECT().ListVisible(ctx).Return(products, nil)

	got, err := fx.service.SearchProducts(ctx, "   ")

	require.NoError(t, err)
	assert.Equal(t, products, got)
}
