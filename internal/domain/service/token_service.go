package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims carries the identity information embedded in an access or
// refresh token after validation.
type TokenClaims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService abstracts token issuance and validation for the stateless
// authentication scheme.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	// Only the access token carries the role claim.
	GenerateTokens(userID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// HashToken returns the hash under which a refresh token is stored.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
