package utils_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillworks/tilldesk/internal/core/domain"
	"github.com/tillworks/tilldesk/internal/utils"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1234.50", utils.FormatMoney(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", utils.FormatMoney(decimal.Zero))
	assert.Equal(t, "$-12.35", utils.FormatMoney(decimal.NewFromFloat(-12.345)))
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("hunter2!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2!", hash)
	assert.True(t, utils.CheckPasswordHash("hunter2!", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	const secret = "test-secret"
	token, err := utils.GenerateJWT("user-1", domain.RoleAdmin, secret, time.Hour, "tilldesk")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "tilldesk", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", domain.RoleStaff, "secret-a", time.Hour, "tilldesk")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", domain.RoleStaff, "secret", -time.Minute, "tilldesk")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	b, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.Len(t, a, 64) // hex doubles the byte length
	assert.NotEqual(t, a, b)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestRefreshTokenHash(t *testing.T) {
	hash := utils.HashRefreshToken("some-token")
	assert.True(t, utils.CompareRefreshTokenHash("some-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash("other-token", hash))
}
