package services

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/constants"
)

func TestGenerateTokenUsesKeyFromEnv(t *testing.T) {
	// khóa ký được set sau khi package đã load, token vẫn phải
	// ký đúng bằng khóa này
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "access-test-key")
	t.Setenv("SECRET_KEY_REFRESH_TOKEN", "refresh-test-key")

	token, err := GenerateToken(UserInfo{UserID: 7, AccountType: constants.AccountTypeMerchant}, 5, true)
	require.NoError(t, err)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("access-test-key"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, uint(7), claims.UserInfo.UserID)
	assert.Equal(t, constants.AccountTypeMerchant, claims.UserInfo.AccountType)
}

func TestParseTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "access-test-key")
	t.Setenv("SECRET_KEY_REFRESH_TOKEN", "refresh-test-key")

	token, err := GenerateToken(UserInfo{UserID: 42, AccountType: constants.AccountTypeCustomer}, 5, false)
	require.NoError(t, err)

	claims, err := ParseToken(token, false)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserInfo.UserID)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "access-test-key")
	t.Setenv("SECRET_KEY_REFRESH_TOKEN", "refresh-test-key")

	// refresh token không parse được bằng khóa access
	token, err := GenerateToken(UserInfo{UserID: 42, AccountType: constants.AccountTypeCustomer}, 5, false)
	require.NoError(t, err)

	_, err = ParseToken(token, true)
	assert.Error(t, err)
}
