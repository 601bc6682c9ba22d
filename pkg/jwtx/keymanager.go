package jwtx

import (
	"fmt"

	"github.com/aussiebroadwan/chambers/pkg/cryptox"
)

// KeyManager owns the signing key and the matching verifier for one process.
// Keys are ephemeral: every restart invalidates outstanding API tokens, which
// is acceptable for tokens that live fifteen minutes.
type KeyManager struct {
	Signer   *Signer
	Verifier Verifier
	KeySet   *KeySet
}

type KeyManagerOptions struct {
	// Issuer is written into and required from every token.
	Issuer string

	// Audience values to require. Empty means no audience validation.
	Audience []string
}

// NewEphemeralKeyManager generates a fresh Ed25519 key with a random kid.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	kid, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate key ID: %w", err)
	}

	key, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, err
	}

	signer, err := NewSigner("chambers-"+kid, key)
	if err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("jwtx: failed to add signer to keyset: %w", err)
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifier(keyset, opts.Issuer, opts.Audience),
		KeySet:   keyset,
	}, nil
}

// IsReady reports whether a verification key is loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}
