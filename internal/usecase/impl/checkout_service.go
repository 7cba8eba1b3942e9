package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the submitted cart into an order atomically.
//
// All price lookups and both inserts (order header and lines) run inside a
// single transaction, so a product vanishing mid-checkout rolls everything
// back. Amounts come from the catalog rows read in that transaction, never
// from the client. Checkout is not idempotent: submitting the same cart
// twice creates two orders.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidQuantity
		}
	}

	srv.log(ctx).Info("Starting checkout", slog.Any("user_id", input.UserID), slog.Int("items", len(input.Items)))

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		// 1. Resolve every cart line against the catalog. A missing or
		// inactive product fails the whole checkout.
		amount := decimal.Zero
		lines := make([]*entity.OrderLine, 0, len(input.Items))
		for _, item := range input.Items {
			product, err := productRepo.FindVisibleByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails("product " + item.ProductID.String() + " is not available")
				}

				return errors.Wrap(err, "failed to resolve cart line")
			}

			lines = append(lines, &entity.OrderLine{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
			})
			amount = amount.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		// 2. Persist the order header and all lines in one unit.
		order = &entity.Order{
			UserID: input.UserID,
			Amount: amount,
			Lines:  lines,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("user_id", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Checkout completed", slog.Any("user_id", input.UserID), slog.Any("order_id", order.ID), slog.String("amount", order.Amount.String()))

	return &usecase.CheckoutOutput{Order: order}, nil
}

// ListOrders returns the caller's own orders, most recent first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order, enforcing owner-or-admin access.
func (srv *orderService) GetOrder(ctx context.Context, requester usecase.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != requester.UserID && !requester.IsAdmin() {
		// Hide the order's existence from non-owners.
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}
