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
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Amy",
		LastName:  "Chen",
		Email:     "amy@example.com",
		Password:  "StrongPass123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "amy@example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Amy",
		LastName:  "Chen",
		Email:     "amy@example.com",
		Password:  "weak",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Amy",
		LastName:  "Chen",
		Email:     "taken@example.com",
		Password:  "StrongPass123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailTaken)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "amy@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "amy@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, entity.RoleUser).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "amy@example.com",
		Password: "StrongPass123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown email and wrong password must be indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "amy@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "amy@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("WrongPass123!", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "amy@example.com",
		Password: "WrongPass123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Logout_Idempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().HashToken("some_refresh_token").Return("some_hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "some_hash").Return(nil)

	err := fx.service.Logout(ctx, "some_refresh_token")
	assert.NoError(t, err)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "amy@example.com", Role: entity.RoleUser}
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "old_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old_refresh_token").
		Return(&service.TokenClaims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh_token").Return("old_hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old_hash").Return(stored, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old_hash").Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, entity.RoleUser).
		Return("new_access", "new_refresh", nil)
	fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := fx.service.Refresh(ctx, "old_refresh_token")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestUserService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("revoked_token").
		Return(&service.TokenClaims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("revoked_token").Return("revoked_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "revoked_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, "revoked_token")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, domainerrors.ErrRefreshTokenInvalid)

	output, err := fx.service.Refresh(ctx, "garbage")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:           userID,
		FirstName:    "Amy",
		LastName:     "Chen",
		Email:        "amy@example.com",
		PasswordHash: "old_hash",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Amelia", user.FirstName)
			assert.Equal(t, "new@example.com", user.Email)
			// Empty password leaves the stored hash untouched.
			assert.Equal(t, "old_hash", user.PasswordHash)
		}).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:    userID,
		FirstName: "Amelia",
		LastName:  "Chen",
		Email:     "new@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Amelia", user.FirstName)
}

func TestUserService_UpdateProfile_ChangePassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:           userID,
		FirstName:    "Amy",
		LastName:     "Chen",
		Email:        "amy@example.com",
		PasswordHash: "old_hash",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.hasher.EXPECT().Hash("NewStrong123!").Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "new_hash", user.PasswordHash)
		}).
		Return(nil)

	_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:    userID,
		FirstName: "Amy",
		LastName:  "Chen",
		Email:     "amy@example.com",
		Password:  "NewStrong123!",
	})

	require.NoError(t, err)
}
