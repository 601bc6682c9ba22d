package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// GenerateEd25519Key generates a fresh Ed25519 signing key. The key only ever
// lives in memory; the API token key set is regenerated on every start.
func GenerateEd25519Key() (ed25519.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate Ed25519 key: %w", err)
	}
	return priv, nil
}
