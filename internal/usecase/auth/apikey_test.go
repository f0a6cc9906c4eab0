package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndMatch(t *testing.T) {
	h, err := HashAPIKey("k3y")
	require.NoError(t, err)

	assert.True(t, MatchAPIKey(h, "k3y"))
	assert.False(t, MatchAPIKey(h, "other"))
	assert.False(t, MatchAPIKey("not-a-hash", "k3y"))
}

func TestIssueAndVerify(t *testing.T) {
	key, err := IssueAPIKey("s3cr3t", "ops", time.Hour)
	require.NoError(t, err)

	sub, err := VerifyAPIKey("s3cr3t", key)
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)

	_, err = VerifyAPIKey("wrong", key)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestVerify_Expired(t *testing.T) {
	claims := jwt.MapClaims{"sub": "ops", "typ": "apikey", "exp": time.Now().Add(-time.Minute).Unix()}
	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cr3t"))
	require.NoError(t, err)

	_, err = VerifyAPIKey("s3cr3t", key)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestVerify_WrongType(t *testing.T) {
	claims := jwt.MapClaims{"sub": "admin-1", "typ": "admin"}
	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cr3t"))
	require.NoError(t, err)

	_, err = VerifyAPIKey("s3cr3t", key)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestEmptySecret(t *testing.T) {
	_, err := IssueAPIKey("", "ops", 0)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = VerifyAPIKey("", "anything")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
