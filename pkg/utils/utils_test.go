package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("42", "ngo", "Helping Hands")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "ngo", claims.Role)
	assert.Equal(t, "Helping Hands", claims.Name)

	expAt, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expAt.Time, time.Minute)
}

func TestParseJWTRejectsTampering(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("42", "user", "Asha")
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// token signed under a different secret
	InitJWT("other-secret")
	_, err = ParseJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
