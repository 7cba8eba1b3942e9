package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- User management ---

// ListUsers returns every account, ordered by creation time.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one account.
func (srv *adminService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// CreateUser creates an account with an explicit role.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.AdminCreateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + string(input.Role))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created by admin", slog.Any("user_id", user.ID), slog.Any("role", user.Role))

	return user, nil
}

// UpdateUser modifies any account, including its role.
func (srv *adminService) UpdateUser(ctx context.Context, input *usecase.AdminUpdateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + string(input.Role))
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	user.Role = input.Role

	if input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash new password")
		}
		user.PasswordHash = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.Any("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated by admin", slog.Any("user_id", user.ID))

	return user, nil
}

// DeleteUser hard-deletes an account and its sessions.
// The order count check and the delete run in one transaction so a
// concurrent checkout cannot slip an order under a disappearing user.
func (srv *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		orderRepo := repoFactory.OrderRepo()
		refreshTokenRepo := repoFactory.RefreshTokenRepo()

		// 1. Verify the user exists.
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Accounts with order history cannot be removed.
		count, err := orderRepo.CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}
		if count > 0 {
			return domainerrors.ErrUserHasOrders
		}

		// 3. Revoke every session, then remove the account.
		if err := refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete refresh tokens")
		}
		if err := userRepo.Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete user", slog.Any("user_id", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User deleted by admin", slog.Any("user_id", userID))

	return nil
}

// --- Catalog management ---

// ListProducts returns the whole catalog including inactive products.
func (srv *adminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product regardless of its active flag.
func (srv *adminService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *adminService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Active:      input.Active,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("product_id", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct modifies a product's fields. Existing order lines keep the
// unit price captured at purchase time.
func (srv *adminService) UpdateProduct(ctx context.Context, input *usecase.AdminUpdateProductInput) (*entity.Product, error) {
	if err := validateProductInput(&input.ProductInput); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Active = input.Active

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("product_id", product.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("product_id", product.ID))

	return product, nil
}

// DeactivateProduct hides a product from the storefront without touching
// order history.
func (srv *adminService) DeactivateProduct(ctx context.Context, productID uuid.UUID) error {
	return srv.setProductActive(ctx, productID, false)
}

// RestoreProduct makes a previously deactivated product visible again.
func (srv *adminService) RestoreProduct(ctx context.Context, productID uuid.UUID) error {
	return srv.setProductActive(ctx, productID, true)
}

func (srv *adminService) setProductActive(ctx context.Context, productID uuid.UUID, active bool) error {
	if err := srv.productRepo.SetActive(ctx, productID, active); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		srv.log(ctx).Error("Failed to update product visibility", slog.Any("product_id", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update product visibility")
	}

	srv.log(ctx).Info("Product visibility changed", slog.Any("product_id", productID), slog.Bool("active", active))

	return nil
}

// --- Order overview ---

// ListAllOrders returns every order in the system, most recent first.
func (srv *adminService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list all orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// validateProductInput rejects catalog writes with a non-positive price.
func validateProductInput(input *usecase.ProductInput) error {
	if input.Price.IsNegative() || input.Price.IsZero() {
		return domainerrors.ErrProductPriceInvalid
	}

	return nil
}
