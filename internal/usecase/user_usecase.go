// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the fields a user may change on their own
// account. An empty Password leaves the stored hash untouched.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// AuthOutput returns the generated tokens after a successful login or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout revokes the session identified by the given refresh token.
	// Unknown tokens are ignored so logout stays idempotent.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh rotates a valid refresh token into a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// GetProfile returns the authenticated user's own account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile modifies the authenticated user's own account.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}
