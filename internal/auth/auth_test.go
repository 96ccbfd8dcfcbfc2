package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 30*time.Minute, 7*24*time.Hour)
}

func TestTokenPairRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	access, refresh, err := m.IssuePair(userID, "pilot@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := m.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "pilot@example.com", claims.Email)
	assert.True(t, claims.IsStaff)
}

func TestRefreshTokenCannotBeUsedAsAccess(t *testing.T) {
	m := newTestManager()

	_, refresh, err := m.IssuePair(uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	_, err = m.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestRefreshAccess(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	access, refresh, err := m.IssuePair(userID, "user@example.com", false)
	require.NoError(t, err)

	newAccess, err := m.RefreshAccess(refresh)
	require.NoError(t, err)
	require.NotEmpty(t, newAccess)

	claims, err := m.ParseAccess(newAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	// An access token is not accepted by the refresh endpoint.
	_, err = m.RefreshAccess(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, -time.Minute)

	access, _, err := m.IssuePair(uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	_, err = m.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessExpiredRefreshToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, -time.Minute)

	_, refresh, err := m.IssuePair(uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	_, err = m.RefreshAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := newTestManager().ParseRefresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	other := NewManager("other-secret", time.Hour, time.Hour)
	access, _, err := other.IssuePair(uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	_, err = newTestManager().ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash := HashPassword("s3cret-pass")
	assert.Len(t, hash, 64)

	assert.True(t, VerifyPassword("s3cret-pass", hash))
	assert.False(t, VerifyPassword("wrong-pass", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("s3cret-pass", ""))
	assert.Empty(t, HashPassword(""))
}
