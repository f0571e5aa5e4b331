package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainVerifier(t *testing.T) {
	v := PlainVerifier{}

	h, err := v.Hash("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", h)

	assert.True(t, v.Verify("password123", "password123"))
	assert.False(t, v.Verify("password123", "Password123"))
	assert.False(t, v.Verify("password123", ""))
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{Cost: 4}

	h, err := v.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", h)

	assert.True(t, v.Verify(h, "password123"))
	assert.False(t, v.Verify(h, "wrong"))
}

func TestBcryptVerifier_ZeroCostUsesDefault(t *testing.T) {
	v := BcryptVerifier{}

	h, err := v.Hash("s")
	require.NoError(t, err)
	assert.True(t, v.Verify(h, "s"))
}
