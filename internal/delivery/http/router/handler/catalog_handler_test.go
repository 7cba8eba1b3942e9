package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogHandlerForTest(t *testing.T) (*CatalogHandler, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := &CatalogHandler{
		catalogUC: impl.NewCatalogService(productRepo, logger),
		logger:    logger,
	}

	return handler, productRepo
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	handler, productRepo := newCatalogHandlerForTest(t)

	products := []*entity.Product{
		{ID: uuid.New(), Name: "Mug", Price: decimal.RequireFromString("10.00"), Active: true},
		{ID: uuid.New(), Name: "Coaster", Price: decimal.RequireFromString("5.5"), Active: true},
	}
	productRepo.EXPECT().ListVisible(mock.Anything).Return(products, nil)

	c, rec := newTestContext(http.MethodGet, "/products")

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"name":"Mug"`)
	assert.Contains(t, body, `"price":"10.00"`, "prices always carry two decimal places")
	assert.Contains(t, body, `"price":"5.50"`)
}

func TestCatalogHandler_ListProducts_WithQuery(t *testing.T) {
	handler, productRepo := newCatalogHandlerForTest(t)

	matches := []*entity.Product{
		{ID: uuid.New(), Name: "Ceramic Mug", Price: decimal.RequireFromString("10.00"), Active: true},
	}
	productRepo.EXPECT().SearchVisible(mock.Anything, "mug").Return(matches, nil)

	c, rec := newTestContext(http.MethodGet, "/products?q=mug")

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ceramic Mug")
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	handler, productRepo := newCatalogHandlerForTest(t)

	productID := uuid.New()
	productRepo.EXPECT().FindVisibleByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	c, rec := newTestContext(http.MethodGet, "/products/"+productID.String())
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestCatalogHandler_GetProduct_InvalidID(t *testing.T) {
	handler, _ := newCatalogHandlerForTest(t)

	c, rec := newTestContext(http.MethodGet, "/products/not-a-uuid")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
