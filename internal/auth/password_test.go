package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, h.Verify("correct horse battery staple", hash))
	assert.False(t, h.Verify("wrong password", hash))
	assert.False(t, h.Verify("", hash))
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same password", first))
	assert.True(t, h.Verify("same password", second))
}

func TestNewHasher_ClampsInvalidCost(t *testing.T) {
	t.Parallel()

	h := NewHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
