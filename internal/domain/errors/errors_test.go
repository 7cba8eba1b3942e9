package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/errors"
)

func TestBaseError_WithDetails(t *testing.T) {
	t.Parallel()

	detailed := ErrProductNotFound.WithDetails("product 42 is not available")

	assert.Equal(t, "product 42 is not available", detailed.Details())
	assert.Empty(t, ErrProductNotFound.Details(), "predefined error must stay untouched")
	assert.Equal(t, ErrProductNotFound.HTTPCode(), detailed.HTTPCode())
	assert.Equal(t, ErrProductNotFound.ErrorCode(), detailed.ErrorCode())
}

func TestBaseError_Is(t *testing.T) {
	t.Parallel()

	detailed := ErrValidationFailed.WithDetails("unknown role: superuser")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrProductNotFound))
	assert.False(t, errors.Is(detailed, errors.New("unrelated")))
}

func TestBaseError_WrapMessage(t *testing.T) {
	t.Parallel()

	wrapped := ErrEmailTaken.WrapMessage("failed to register user")

	assert.True(t, errors.Is(wrapped, ErrEmailTaken))
	assert.Contains(t, wrapped.Error(), "failed to register user")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "EMAIL_TAKEN", appErr.ErrorCode())
}
