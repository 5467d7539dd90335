package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("battery staple", hash))

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "money-tracker")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "money-tracker", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	expired, err := GenerateJWT("user-1", "secret", -time.Second, "money-tracker")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateJWT("user-1", "secret", time.Hour, "money-tracker")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(valid, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(unsigned, "secret")
	assert.Error(t, err)
}
