package cryptox_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/aussiebroadwan/chambers/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	key, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	require.Len(t, key, ed25519.PrivateKeySize)

	msg := []byte("cause list")
	sig := ed25519.Sign(key, msg)
	require.True(t, ed25519.Verify(key.Public().(ed25519.PublicKey), msg, sig))
}

func TestGenerateEd25519Key_Unique(t *testing.T) {
	a, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	b, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
