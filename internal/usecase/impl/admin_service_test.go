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
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Hasher:      hasher,
		Logger:      logger,
	})

	return adminServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		hasher:      hasher,
	}
}

func TestAdminService_CreateUser_WithRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("StrongPass123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.AdminCreateUserInput{
		FirstName: "Ops",
		LastName:  "Admin",
		Email:     "ops@example.com",
		Password:  "StrongPass123!",
		Role:      entity.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAdminService_CreateUser_UnknownRole(t *testing.T) {
	fx := createTestAdminService(t)

	user, err := fx.service.CreateUser(context.Background(), &usecase.AdminCreateUserInput{
		FirstName: "Ops",
		LastName:  "Admin",
		Email:     "ops@example.com",
		Password:  "StrongPass123!",
		Role:      entity.Role("superuser"),
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_UpdateUser_ChangesRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:        userID,
		FirstName: "Amy",
		LastName:  "Chen",
		Email:     "amy@example.com",
		Role:      entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleAdmin, user.Role)
		}).
		Return(nil)

	user, err := fx.service.UpdateUser(ctx, &usecase.AdminUpdateUserInput{
		UserID:    userID,
		FirstName: "Amy",
		LastName:  "Chen",
		Email:     "amy@example.com",
		Role:      entity.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAdminService_DeleteUser_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "amy@example.com", Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			txOrderRepo.EXPECT().CountByUser(ctx, userID).Return(0, nil)
			txTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
			txUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)
			factory.EXPECT().RefreshTokenRepo().Return(txTokenRepo)

			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, userID)
	assert.NoError(t, err)
}

func TestAdminService_DeleteUser_BlockedByOrders(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "amy@example.com", Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			txOrderRepo.EXPECT().CountByUser(ctx, userID).Return(3, nil)

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)
			factory.EXPECT().RefreshTokenRepo().Return(txTokenRepo)

			err := fn(factory)
			// The account and its sessions must survive.
			txUserRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			txTokenRepo.AssertNotCalled(t, "DeleteRefreshTokensByUserID", mock.Anything, mock.Anything)

			return err
		})

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserHasOrders))
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().OrderRepo().Return(mockRepo.NewMockOrderRepository(t))
			factory.EXPECT().RefreshTokenRepo().Return(mockRepo.NewMockRefreshTokenRepository(t))

			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAdminService_CreateProduct_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:        "Mug",
		Description: "A ceramic mug",
		Price:       decimal.RequireFromString("10.00"),
		Active:      true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("10.00")))
}

func TestAdminService_CreateProduct_NonPositivePrice(t *testing.T) {
	fx := createTestAdminService(t)

	for _, price := range []string{"0", "-1.00"} {
		product, err := fx.service.CreateProduct(context.Background(), &usecase.ProductInput{
			Name:   "Mug",
			Price:  decimal.RequireFromString(price),
			Active: true,
		})

		require.Error(t, err)
		assert.Nil(t, product)
		assert.True(t, errors.Is(err, domainerrors.ErrProductPriceInvalid))
	}
}

func TestAdminService_UpdateProduct_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:     productID,
		Name:   "Mug",
		Price:  decimal.RequireFromString("10.00"),
		Active: true,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, &usecase.AdminUpdateProductInput{
		ProductID: productID,
		ProductInput: usecase.ProductInput{
			Name:   "Mug",
			Price:  decimal.RequireFromString("12.50"),
			Active: true,
		},
	})

	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestAdminService_DeactivateAndRestoreProduct(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().SetActive(ctx, productID, false).Return(nil)
	require.NoError(t, fx.service.DeactivateProduct(ctx, productID))

	fx.productRepo.EXPECT().SetActive(ctx, productID, true).Return(nil)
	require.NoError(t, fx.service.RestoreProduct(ctx, productID))
}

func TestAdminService_DeactivateProduct_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().SetActive(ctx, productID, false).Return(repository.ErrProductNotFound)

	err := fx.service.DeactivateProduct(ctx, productID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestAdminService_ListAllOrders(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: uuid.New()},
		{ID: uuid.New(), UserID: uuid.New()},
	}

	fx.orderRepo.EXPECT().ListAll(ctx).Return(orders, nil)

	got, err := fx.service.ListAllOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
