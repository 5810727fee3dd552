package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	userID := uuid.New()

	token, exp, err := GenerateAccessToken(userID, "moviefan", config)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := ParseAccessToken(token, config)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "moviefan", claims.Username)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateAccessToken(uuid.New(), "moviefan", JWTConfig{Secret: "right", ExpiryHours: 1})
	require.NoError(t, err)

	_, err = ParseAccessToken(token, JWTConfig{Secret: "wrong"})
	assert.Error(t, err)
}

func TestParseAccessTokenExpired(t *testing.T) {
	token, _, err := GenerateAccessToken(uuid.New(), "moviefan", JWTConfig{Secret: "test-secret", ExpiryHours: -1})
	require.NoError(t, err)

	_, err = ParseAccessToken(token, JWTConfig{Secret: "test-secret"})
	assert.Error(t, err)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("not.a.token", JWTConfig{Secret: "test-secret"})
	assert.Error(t, err)
}
