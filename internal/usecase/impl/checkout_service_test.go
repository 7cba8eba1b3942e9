package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

// runInTransaction wires the transaction manager mock to invoke the callback
// with a repository factory backed by the given mocks.
func runInTransaction(t *testing.T, fx orderServiceFixtures, ctx context.Context, productRepo *mockRepo.MockProductRepository, orderRepo *mockRepo.MockOrderRepository) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().ProductRepo().Return(productRepo)
			factory.EXPECT().OrderRepo().Return(orderRepo)

			return fn(factory)
		})
}

func TestOrderService_Checkout_TotalsFromCatalog(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	mugID := uuid.New()
	coasterID := uuid.New()

	mug := &entity.Product{
		ID:     mugID,
		Name:   "Mug",
		Price:  decimal.RequireFromString("10.00"),
		Active: true,
	}
	coaster := &entity.Product{
		ID:     coasterID,
		Name:   "Coaster",
		Price:  decimal.RequireFromString("5.00"),
		Active: true,
	}

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txProductRepo.EXPECT().FindVisibleByID(ctx, mugID).Return(mug, nil)
	txProductRepo.EXPECT().FindVisibleByID(ctx, coasterID).Return(coaster, nil)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)
	runInTransaction(t, fx, ctx, txProductRepo, txOrderRepo)

	output, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{
		UserID: userID,
		Items: []usecase.CheckoutItem{
			{ProductID: mugID, Quantity: 2},
			{ProductID: coasterID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Order.Amount.Equal(decimal.RequireFromString("25.00")),
		"expected 25.00, got %s", output.Order.Amount)
	require.Len(t, output.Order.Lines, 2)
	assert.True(t, output.Order.Lines[0].UnitPrice.Equal(mug.Price))
	assert.Equal(t, 2, output.Order.Lines[0].Quantity)
	assert.Equal(t, "Mug", output.Order.Lines[0].ProductName)
	assert.Equal(t, userID, output.Order.UserID)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	output, err := fx.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID: uuid.New(),
		Items:  nil,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_Checkout_InvalidQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	for _, quantity := range []int{0, -1} {
		output, err := fx.service.Checkout(context.Background(), &usecase.CheckoutInput{
			UserID: uuid.New(),
			Items:  []usecase.CheckoutItem{{ProductID: uuid.New(), Quantity: quantity}},
		})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	}
}

func TestOrderService_Checkout_UnavailableProductFailsWholeOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	mugID := uuid.New()
	goneID := uuid.New()

	mug := &entity.Product{
		ID:     mugID,
		Name:   "Mug",
		Price:  decimal.RequireFromString("10.00"),
		Active: true,
	}

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txProductRepo.EXPECT().FindVisibleByID(ctx, mugID).Return(mug, nil)
	// Deactivated and deleted products look identical to checkout.
	txProductRepo.EXPECT().FindVisibleByID(ctx, goneID).Return(nil, repository.ErrProductNotFound)
	runInTransaction(t, fx, ctx, txProductRepo, txOrderRepo)

	output, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{
		UserID: uuid.New(),
		Items: []usecase.CheckoutItem{
			{ProductID: mugID, Quantity: 1},
			{ProductID: goneID, Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	// No order insert happened for the resolvable line either.
	txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_NotIdempotent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	mugID := uuid.New()
	mug := &entity.Product{
		ID:     mugID,
		Name:   "Mug",
		Price:  decimal.RequireFromString("10.00"),
		Active: true,
	}

	created := 0
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txProductRepo.EXPECT().FindVisibleByID(ctx, mugID).Return(mug, nil)
			txOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
					created++
				}).
				Return(nil)

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)

			return fn(factory)
		}).
		Times(2)

	input := &usecase.CheckoutInput{
		UserID: userID,
		Items:  []usecase.CheckoutItem{{ProductID: mugID, Quantity: 1}},
	}

	first, err := fx.service.Checkout(ctx, input)
	require.NoError(t, err)
	second, err := fx.service.Checkout(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	assert.NotEqual(t, first.Order.ID, second.Order.ID)
}

func TestOrderService_ListOrders_NewestFirst(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: userID, CreatedAt: now},
		{ID: uuid.New(), UserID: userID, CreatedAt: now.Add(-time.Hour)},
	}

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
}

func TestOrderService_GetOrder_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, usecase.Identity{UserID: userID, Role: entity.RoleUser}, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderService_GetOrder_NonOwnerHidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, usecase.Identity{UserID: uuid.New(), Role: entity.RoleUser}, order.ID)

	require.Error(t, err)
	assert.Nil(t, got)
	// Non-owners get the same error as a nonexistent order.
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetOrder_AdminBypass(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, usecase.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.GetOrder(ctx, usecase.Identity{UserID: uuid.New(), Role: entity.RoleUser}, orderID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
