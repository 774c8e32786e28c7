package jwt

import (
	"testing"
	"time"

	"health-assessment-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	token, tokenID, err := svc.GenerateSessionToken("session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.Equal(t, time.Hour, svc.GetExpiry())
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	foreign, _, err := other.GenerateSessionToken("session-1")
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	expired := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})
	old, _, err := expired.GenerateSessionToken("session-1")
	require.NoError(t, err)
	_, err = svc.ValidateToken(old)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
