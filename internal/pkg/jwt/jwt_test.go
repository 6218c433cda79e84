package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("admin", "admin@hrms.com", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	assert.False(t, svc.IsTokenRevoked("some-token"))
	svc.RevokeToken("some-token")
	assert.True(t, svc.IsTokenRevoked("some-token"))
}

func TestRevokeTokenSweepsExpiredEntries(t *testing.T) {
	svc := NewJWTService("test-secret", "1h").(*JWTService)

	svc.RevokeToken("old-token")
	svc.revokedTokens["old-token"] = time.Now().Add(-2 * time.Hour).Unix()

	svc.RevokeToken("new-token")

	assert.False(t, svc.IsTokenRevoked("old-token"))
	assert.True(t, svc.IsTokenRevoked("new-token"))
}
