package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("swordfish")
	require.NoError(t, err)
	require.NotEqual(t, "swordfish", hash)

	assert.NoError(t, Verify("swordfish", hash))
	assert.ErrorIs(t, Verify("sw0rdfish", hash), ErrMismatch)
	assert.ErrorIs(t, Verify("", hash), ErrMismatch)
}
