package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderHandlerFixtures struct {
	handler   *OrderHandler
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func newOrderHandlerForTest(t *testing.T) orderHandlerFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := &OrderHandler{
		orderUC: impl.NewOrderService(impl.OrderServiceParams{
			TxManager: txManager,
			OrderRepo: orderRepo,
			Logger:    logger,
		}),
		logger: logger,
	}

	return orderHandlerFixtures{
		handler:   handler,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOrderHandler_Checkout_ZeroQuantity(t *testing.T) {
	fx := newOrderHandlerForTest(t)

	body := `{"lines":[{"product_id":"` + uuid.NewString() + `","quantity":0}]}`
	c, rec := newJSONContext(http.MethodPost, "/checkout", body)
	c.Set("userID", uuid.New())

	require.NoError(t, fx.handler.Checkout(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_QUANTITY")
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestOrderHandler_Checkout_NegativeQuantity(t *testing.T) {
	fx := newOrderHandlerForTest(t)

	body := `{"lines":[{"product_id":"` + uuid.NewString() + `","quantity":-1}]}`
	c, rec := newJSONContext(http.MethodPost, "/checkout", body)
	c.Set("userID", uuid.New())

	require.NoError(t, fx.handler.Checkout(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_QUANTITY")
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	fx := newOrderHandlerForTest(t)

	c, rec := newJSONContext(http.MethodPost, "/checkout", `{"lines":[]}`)
	c.Set("userID", uuid.New())

	require.NoError(t, fx.handler.Checkout(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_CART")
}

func TestOrderHandler_Checkout_Unauthenticated(t *testing.T) {
	fx := newOrderHandlerForTest(t)

	c, rec := newJSONContext(http.MethodPost, "/checkout", `{"lines":[]}`)

	require.NoError(t, fx.handler.Checkout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
