package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	token, exp, err := m.GenerateAccessToken("user-1", "sess-1")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestJWTSecretsAreSeparate(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Minute, time.Hour)

	access, _, err := m.GenerateAccessToken("user-1", "sess-1")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("user-1", "sess-1")
	require.NoError(t, err)

	// A refresh token must not validate as an access token, and vice versa.
	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, time.Hour)
	token, _, err := m.GenerateAccessToken("user-1", "sess-1")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTTampered(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	other := NewJWTManager("different", "different", time.Minute, time.Hour)

	token, _, err := other.GenerateAccessToken("user-1", "sess-1")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}
