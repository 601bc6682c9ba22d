package service

import (
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/pkg/jwtx"
)

// TokenService mints API bearer tokens.
type TokenService struct {
	Signer *jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Issue returns a signed access token for ident and its lifetime.
func (s *TokenService) Issue(ident domain.Identity) (string, time.Duration, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		ident.ID,
		ident.Username,
		ident.DisplayName,
		ttl,
		s.Issuer,
		nil,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}
