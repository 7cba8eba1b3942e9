package usecase

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity carries the authenticated caller's identity into the use case
// layer. It is resolved from the access token by the delivery layer; use
// cases never parse tokens themselves.
type Identity struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}
