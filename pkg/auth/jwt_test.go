package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	// Arrange
	svc, err := NewJWTService("test-secret", 60)
	require.NoError(t, err)

	// Act
	token, err := svc.GenerateToken(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWTService_ParseToken_InvalidToken(t *testing.T) {
	svc, err := NewJWTService("test-secret", 60)
	require.NoError(t, err)

	_, err = svc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestJWTService_ParseToken_WrongKey(t *testing.T) {
	// Токен, подписанный другим ключом, должен отклоняться
	issuer, err := NewJWTService("key-one", 60)
	require.NoError(t, err)
	verifier, err := NewJWTService("key-two", 60)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1, "a@b.c")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", 60)
	assert.Error(t, err)
}
