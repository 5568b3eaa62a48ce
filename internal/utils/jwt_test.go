package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret          = "test-secret-key-for-jwt-testing"
	testWrongSecret     = "wrong-secret-key-for-jwt-testing"
	testEmail           = "admin@example.com"
	testTokenDuration   = 12 * time.Hour
	testExpiredDuration = -1 * time.Hour
)

func TestGenerateToken_Success(t *testing.T) {
	token, err := GenerateToken(testEmail, testSecret, testTokenDuration)

	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Contains(t, token, ".", "JWT token should contain dots")
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	// Signing with an empty secret still works, it is just insecure
	token, err := GenerateToken(testEmail, "", testTokenDuration)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken_Success(t *testing.T) {
	token, err := GenerateToken(testEmail, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	require.NoError(t, err, "ValidateToken should not return error for valid token")
	require.NotNil(t, claims)
	assert.Equal(t, testEmail, claims.Email, "Email claim should match")
	assert.Equal(t, testEmail, claims.Subject, "Subject should carry the email")
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()), "Token should not be expired")
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	token, err := GenerateToken(testEmail, testSecret, testExpiredDuration)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)

	assert.ErrorIs(t, err, ErrExpiredToken, "Expired token should return ErrExpiredToken")
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testEmail, testSecret, testTokenDuration)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testWrongSecret)

	assert.ErrorIs(t, err, ErrInvalidToken, "Token signed with another secret should be invalid")
	assert.Nil(t, claims)
}

func TestValidateToken_MalformedToken(t *testing.T) {
	malformed := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c",
	}

	for _, token := range malformed {
		t.Run(token, func(t *testing.T) {
			claims, err := ValidateToken(token, testSecret)

			assert.Error(t, err, "Malformed token should not validate")
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_ExpiryBoundary(t *testing.T) {
	// A token that lives for one second should be valid now and carry
	// an expiry close to now+1s.
	token, err := GenerateToken(testEmail, testSecret, time.Second)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Second), claims.ExpiresAt.Time, 2*time.Second)
}
