package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateAccessToken("valid_token").
		Return(&service.TokenClaims{UserID: userID, Role: entity.RoleUser}, nil)

	c, rec := newAuthTestContext("Bearer valid_token")

	var seen bool
	next := func(c echo.Context) error {
		seen = true

		identity, ok := GetIdentity(c)
		require.True(t, ok)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, entity.RoleUser, identity.Role)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.True(t, seen)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateAccessToken("garbage").
		Return(nil, domainerrors.ErrRefreshTokenInvalid)

	c, rec := newAuthTestContext("Bearer garbage")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tests := []struct {
		name     string
		role     entity.Role
		wantCode int
	}{
		{name: "admin passes", role: entity.RoleAdmin, wantCode: http.StatusOK},
		{name: "user is refused", role: entity.RoleUser, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthTestContext("")
			c.Set("userID", uuid.New())
			c.Set("role", tt.role)

			require.NoError(t, m.RequireAdmin(okHandler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireAdmin_WithoutAuthenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")

	require.NoError(t, m.RequireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
