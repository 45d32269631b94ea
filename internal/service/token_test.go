package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-notes-api/internal/model"
)

func newTestTokenService() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := newTestTokenService()

	access, err := tokens.SignAccess("user-1")
	require.NoError(t, err)
	userID, err := tokens.VerifyAccess(access)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	refresh, err := tokens.SignRefresh("user-1")
	require.NoError(t, err)
	userID, err = tokens.VerifyRefresh(refresh)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestTokenKindsUseIndependentSecrets(t *testing.T) {
	t.Parallel()

	tokens := newTestTokenService()

	access, err := tokens.SignAccess("user-1")
	require.NoError(t, err)
	_, err = tokens.VerifyRefresh(access)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	refresh, err := tokens.SignRefresh("user-1")
	require.NoError(t, err)
	_, err = tokens.VerifyAccess(refresh)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	access, err := tokens.SignAccess("user-1")
	require.NoError(t, err)

	_, err = tokens.VerifyAccess(access)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	t.Parallel()

	tokens := newTestTokenService()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tokens.VerifyAccess(token)
		require.ErrorIs(t, err, model.ErrInvalidToken, "token: %q", token)
	}
}

func TestTokenFromDifferentServiceIsRejected(t *testing.T) {
	t.Parallel()

	tokens := newTestTokenService()
	other := NewTokenService("other-access", "other-refresh", 15*time.Minute, 7*24*time.Hour)

	access, err := other.SignAccess("user-1")
	require.NoError(t, err)

	_, err = tokens.VerifyAccess(access)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}
