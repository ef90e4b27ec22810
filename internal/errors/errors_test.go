package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "document"}
		assert.Equal(t, "document not found", err.Error())
	})

	t.Run("Error message with reason", func(t *testing.T) {
		assert.Equal(t, "invite not found or you are not authorized to delete it", ErrInviteNotFound.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "workspace"}
		err2 := &NotFoundError{Entity: "workspace"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInviteNotFound, ErrWorkspaceNotFound))
	})

	t.Run("IsNotFound helper sees through wrapping", func(t *testing.T) {
		assert.True(t, IsNotFound(fmt.Errorf("revoke: %w", ErrInviteNotFound)))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "case"}
		assert.Equal(t, "case already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrCaseAlreadyFollowed))
		assert.False(t, IsAlreadyExists(ErrCaseNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		assert.Equal(t, "validation error: No workspaces found for admin", ErrNoOwnedWorkspace.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.False(t, IsValidation(ErrUserNotFound))
	})
}

func TestCapacityExceededError(t *testing.T) {
	err := NewCapacityExceededError(5)
	assert.Equal(t, "Seat limit reached (5 users)", err.Error())
	assert.True(t, IsCapacityExceeded(fmt.Errorf("send invite: %w", err)))
	assert.False(t, IsCapacityExceeded(ErrOwnerRequired))
}

func TestTokenErrors(t *testing.T) {
	assert.True(t, IsInvalidToken(ErrInvalidOrExpiredInvite))
	assert.True(t, IsInvalidToken(fmt.Errorf("reset: %w", ErrInvalidOrExpiredResetToken)))
	assert.False(t, IsInvalidToken(ErrInvalidToken))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrOwnerRequired))
	assert.True(t, IsAuthorization(ErrOwnerRequired))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.True(t, IsConfiguration(ErrStorageNotConfigured))
}
