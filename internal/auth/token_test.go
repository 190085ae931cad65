package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour, 7*24*time.Hour)

	token, err := issuer.IssueLogin(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenLifetimes(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour, 7*24*time.Hour)

	regToken, err := issuer.IssueRegistration(1)
	require.NoError(t, err)
	loginToken, err := issuer.IssueLogin(1)
	require.NoError(t, err)

	regClaims, err := ParseToken("test-secret", regToken)
	require.NoError(t, err)
	loginClaims, err := ParseToken("test-secret", loginToken)
	require.NoError(t, err)

	regExp := regClaims.ExpiresAt.Time
	loginExp := loginClaims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(time.Hour), regExp, time.Minute)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), loginExp, time.Minute)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute, -time.Minute)

	token, err := issuer.IssueLogin(7)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour, time.Hour)

	token, err := issuer.IssueLogin(7)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := ParseToken("test-secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
