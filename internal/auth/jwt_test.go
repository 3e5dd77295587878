package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	token, err := manager.Generate("identity-123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "identity-123", subject)
}

func TestTokenManager_RejectsForeignToken(t *testing.T) {
	issuer, err := NewTokenManager("secret-one")
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret-two")
	require.NoError(t, err)

	token, err := issuer.Generate("identity-123", "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	_, err = manager.Verify("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("")
	assert.Error(t, err)
}
