package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Owner@Example.com", "Owner", "s3cret-pass", "bzk_live_abc123")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", u.Email)
	assert.True(t, u.IsActive())
	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.Equal(t, HashAPIKey("bzk_live_abc123"), u.APIKeyHash)

	_, err = NewUser("not-an-email", "x", "s3cret-pass", "k")
	assert.Error(t, err)

	_, err = NewUser("a@b.co", "x", "short", "k")
	assert.Error(t, err)

	_, err = NewUser("a@b.co", "x", "s3cret-pass", "")
	assert.Error(t, err)
}

func TestRotateAPIKey(t *testing.T) {
	u, err := NewUser("a@b.co", "x", "s3cret-pass", "old-key")
	require.NoError(t, err)
	old := u.APIKeyHash

	require.NoError(t, u.RotateAPIKey("new-key"))
	assert.NotEqual(t, old, u.APIKeyHash)
	assert.Error(t, u.RotateAPIKey(""))
}

func TestHashAPIKeyIsStable(t *testing.T) {
	assert.Equal(t, HashAPIKey("k"), HashAPIKey("k"))
	assert.NotEqual(t, HashAPIKey("k"), HashAPIKey("k2"))
	assert.Len(t, HashAPIKey("k"), 64)
}
