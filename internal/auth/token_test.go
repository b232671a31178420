package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 24*time.Hour)

	token, tokenID, expiresAt, err := issuer.Mint("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, tokenID, claims.ID)
}

func TestParseRecentTokenSucceeds(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 24*time.Hour)
	token, _, _, err := issuer.Mint("user-1")
	require.NoError(t, err)

	// minted a moment ago
	time.Sleep(time.Second)
	_, err = issuer.Parse(token)
	assert.NoError(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -25*time.Hour)
	token, _, _, err := issuer.Mint("user-1")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, _, _, err := issuer.Mint("user-1")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseGarbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	_, err := issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough password"))
}
