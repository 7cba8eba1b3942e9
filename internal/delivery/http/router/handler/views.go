// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView is the outward representation of an account. The password hash
// never leaves the service.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductView is the outward representation of a catalog entry. Money fields
// always carry two decimal places on the wire.
type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderLineView is one line item of an order as returned to clients.
type OrderLineView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   string    `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Cost        string    `json:"cost"`
}

// OrderView is the outward representation of an order with its lines.
type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    string          `json:"amount"`
	Lines     []OrderLineView `json:"lines"`
	CreatedAt time.Time       `json:"created_at"`
}

// formatMoney renders a monetary amount with exactly two decimal places,
// matching the precision stored in the database.
func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// AuthView carries the token pair issued on login or refresh.
type AuthView struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         UserView `json:"user"`
}

func toUserView(user *entity.User) UserView {
	return UserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserViews(users []*entity.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

func toProductView(product *entity.Product) ProductView {
	return ProductView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       formatMoney(product.Price),
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductViews(products []*entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

func toOrderView(order *entity.Order) OrderView {
	lines := make([]OrderLineView, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineView{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   formatMoney(line.UnitPrice),
			Quantity:    line.Quantity,
			Cost:        formatMoney(line.Cost()),
		})
	}

	return OrderView{
		ID:        order.ID,
		UserID:    order.UserID,
		Amount:    formatMoney(order.Amount),
		Lines:     lines,
		CreatedAt: order.CreatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}
