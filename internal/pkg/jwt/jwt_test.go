package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payease-hq/payease-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessTokenClaims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "asha@payease.in", "co-1", user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	for claim, want := range map[string]string{
		"user_id":    "user-1",
		"email":      "asha@payease.in",
		"company_id": "co-1",
		"role":       "admin",
		"type":       "access",
	} {
		got, ok := token.Get(claim)
		require.True(t, ok, "claim %s missing", claim)
		assert.Equal(t, want, got)
	}
}

func TestValidateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	access, _, err := svc.GenerateAccessToken("user-1", "asha@payease.in", "co-1", user.RoleOperator)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsWrongKey(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	other := NewJWTService("a-different-secret", "1h", "24h")

	refresh, _, err := other.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	cookie := svc.RefreshTokenCookie(refresh, expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, refresh, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}
