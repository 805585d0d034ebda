package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken(42, "f@x.com", models.RoleFreelancer)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "f@x.com", claims.Email)
	assert.Equal(t, models.RoleFreelancer, claims.Role)
}

func TestParseTokenRejectsGarbageAndTampering(t *testing.T) {
	Init("test-secret")

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err := GenerateToken(1, "r@x.com", models.RoleRecruiter)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Init("first-secret")
	token, err := GenerateToken(1, "r@x.com", models.RoleRecruiter)
	require.NoError(t, err)

	Init("second-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22!", hash)
	assert.True(t, CheckPassword(hash, "hunter22!"))
	assert.False(t, CheckPassword(hash, "hunter23!"))

	_, err = HashPassword("short")
	assert.Error(t, err)
}
