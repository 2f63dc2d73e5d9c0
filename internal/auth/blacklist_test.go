package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlacklist(t *testing.T) {
	t.Run("revoked token is contained until expiry", func(t *testing.T) {
		b := NewBlacklist()
		b.Add("jti-1", time.Now().UTC().Add(time.Hour))

		assert.True(t, b.Contains("jti-1"))
		assert.False(t, b.Contains("jti-2"))
	})

	t.Run("expired entry no longer matches", func(t *testing.T) {
		b := NewBlacklist()
		b.Add("jti-1", time.Now().UTC().Add(-time.Minute))

		assert.False(t, b.Contains("jti-1"))
	})

	t.Run("empty token ID ignored", func(t *testing.T) {
		b := NewBlacklist()
		b.Add("", time.Now().UTC().Add(time.Hour))

		assert.False(t, b.Contains(""))
	})

	t.Run("sweep drops expired entries only", func(t *testing.T) {
		b := NewBlacklist()
		b.Add("old", time.Now().UTC().Add(-time.Minute))
		b.Add("live", time.Now().UTC().Add(time.Hour))

		b.Sweep()

		b.mu.RLock()
		defer b.mu.RUnlock()
		assert.NotContains(t, b.revoked, "old")
		assert.Contains(t, b.revoked, "live")
	})
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("user-1", "user@example.com")
	assert.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID, "token needs a jti for revocation")
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateAccessToken("user-1", "u@example.com")
	assert.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).ParseAndValidate(token)
	assert.Error(t, err)
}
