// Package repository defines the persistence contracts of the domain layer.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the given identifier.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	// Create persists a new user. The entity's ID and timestamps are
	// populated from the generated row on success.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user, ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Update modifies an existing user's mutable fields.
	Update(ctx context.Context, user *entity.User) error

	// Delete hard-deletes a user. Callers are responsible for checking
	// that no orders still reference the user.
	Delete(ctx context.Context, id uuid.UUID) error
}
