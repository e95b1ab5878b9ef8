package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenManager("secret-a", time.Hour).Issue("user-123")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}
