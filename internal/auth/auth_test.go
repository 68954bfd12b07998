package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		password := "samePassword"
		hash1, _ := HashPassword(password)
		hash2, _ := HashPassword(password)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	password := "correctPassword"
	hashed, _ := HashPassword(password)

	t.Run("Correct password", func(t *testing.T) {
		assert.True(t, CheckPassword(hashed, password))
	})

	t.Run("Incorrect password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, "wrongPassword"))
	})

	t.Run("Empty password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, ""))
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		token, err := GenerateAccessToken(42, "admin@callanannycare.com", testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.AdminID)
		assert.Equal(t, "admin@callanannycare.com", claims.Email)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		_, err := GenerateAccessToken(1, "admin@callanannycare.com", "")
		assert.ErrorIs(t, err, ErrEmptyJWTSecret)
	})

	t.Run("Fail with wrong secret", func(t *testing.T) {
		token, _ := GenerateAccessToken(1, "admin@callanannycare.com", testSecret)
		_, err := ValidateToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", testSecret)
		assert.Error(t, err)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("Refresh token yields new access token", func(t *testing.T) {
		_, refresh, err := GenerateTokens(7, "admin@callanannycare.com", testSecret)
		require.NoError(t, err)

		access, claims, err := RefreshAccessToken(refresh, testSecret)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.Equal(t, int64(7), claims.AdminID)
	})

	t.Run("Access token cannot refresh", func(t *testing.T) {
		access, err := GenerateAccessToken(7, "admin@callanannycare.com", testSecret)
		require.NoError(t, err)

		_, _, err = RefreshAccessToken(access, testSecret)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}
