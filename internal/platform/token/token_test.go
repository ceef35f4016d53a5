package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewService("test-key", "nidx-test", time.Minute)

	tok, err := svc.Issue("batch-client", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "batch-client", subject)
}

func TestValidateRejections(t *testing.T) {
	svc := NewService("test-key", "nidx-test", time.Minute)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewService("other-key", "nidx-test", time.Minute)
		tok, err := other.Issue("batch-client", time.Now())
		require.NoError(t, err)

		_, err = svc.ValidateToken(tok)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := svc.Issue("batch-client", time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = svc.ValidateToken(tok)
		assert.Error(t, err)
	})
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	svc := NewService("test-key", "nidx-test", time.Minute)
	now := time.Now()

	a, err := svc.Issue("s", now)
	require.NoError(t, err)
	b, err := svc.Issue("s", now)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
