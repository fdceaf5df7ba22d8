package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktake/internal/core/apperror"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("admin", "inventorylab", NewJWTService(DefaultJWTConfig("test-secret")))
	require.NoError(t, err)
	return svc
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestService(t)

	token, expiresAt, err := svc.Login(context.Background(), "admin", "inventorylab")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	actor, err := svc.Validator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", actor.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid username or password. Please try again.", appErr.Message)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Login(context.Background(), "root", "inventorylab")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestValidateTokenRejectsForgedSignature(t *testing.T) {
	svc := newTestService(t)
	other := NewJWTService(DefaultJWTConfig("other-secret"))

	token, _, err := other.GenerateAccessToken("admin")
	require.NoError(t, err)

	_, err = svc.Validator().ValidateToken(token)
	assert.Error(t, err)
}
