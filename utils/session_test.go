package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueSessionToken(secret, 7, false, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(secret, token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.False(t, claims.ChatAccess)
}

func TestSessionToken_CarriesChatGrant(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueSessionToken(secret, 7, true, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(secret, token)
	require.NoError(t, err)
	assert.True(t, claims.ChatAccess)
}

func TestSessionToken_WrongSecretRejected(t *testing.T) {
	token, err := IssueSessionToken([]byte("secret-a"), 7, false, time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestSessionToken_ExpiredRejected(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueSessionToken(secret, 7, false, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(secret, token)
	assert.Error(t, err)
}

func TestSessionToken_GarbageRejected(t *testing.T) {
	_, err := ParseSessionToken([]byte("test-secret"), "not.a.token")
	assert.Error(t, err)
}
