package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/chambers/pkg/jwtx"
)

// InitKeys creates the API token signing key. Keys live in memory only, so a
// restart invalidates every outstanding bearer token.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer: cfg.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create key manager: %w", err)
	}

	logger.Info("initialized ephemeral signing key",
		"kid", km.Signer.KID(),
		"algorithm", km.Signer.Alg(),
	)
	return km, nil
}
