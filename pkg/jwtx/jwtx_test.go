package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/chambers/pkg/cryptox"
	"github.com/aussiebroadwan/chambers/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "chambers-test"

func newManager(t *testing.T) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	return km
}

func TestSignAndVerify(t *testing.T) {
	km := newManager(t)
	require.Equal(t, "EdDSA", km.Signer.Alg())

	claims := jwtx.NewAccessClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "judge1", "Justice Sharma",
		5*time.Minute, exampleIssuer, nil, time.Now().UTC())

	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	parsed, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, "judge1", parsed.Username)
	require.Equal(t, "Justice Sharma", parsed.Name)
	require.NotEmpty(t, parsed.ID)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	a := newManager(t)
	b := newManager(t)

	token, err := a.Signer.Sign(jwtx.NewAccessClaims("sub", "u", "n", time.Minute, exampleIssuer, nil, time.Now()))
	require.NoError(t, err)

	_, err = b.Verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	km := newManager(t)
	token, err := km.Signer.Sign(jwtx.NewAccessClaims("sub", "u", "n", time.Minute, "someone-else", nil, time.Now()))
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	km := newManager(t)
	past := time.Now().Add(-time.Hour)
	token, err := km.Signer.Sign(jwtx.NewAccessClaims("sub", "u", "n", time.Minute, exampleIssuer, nil, past))
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsTampered(t *testing.T) {
	km := newManager(t)
	token, err := km.Signer.Sign(jwtx.NewAccessClaims("sub", "u", "n", time.Minute, exampleIssuer, nil, time.Now()))
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token[:len(token)-2] + "xx")
	require.Error(t, err)

	_, err = km.Verifier.Verify("not.a.jwt")
	require.Error(t, err)
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"chambers-api"}}}

	require.NoError(t, c.ValidateAudience(nil))
	require.NoError(t, c.ValidateAudience([]string{"other", "chambers-api"}))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}

func TestJWKRoundTrip(t *testing.T) {
	key, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSigner("kid-1", key)
	require.NoError(t, err)

	jwk := signer.PublicJWK()
	require.Equal(t, "OKP", jwk.Kty)
	require.Equal(t, "Ed25519", jwk.Crv)
	require.Equal(t, "kid-1", jwk.Kid)

	ks := jwtx.NewKeySet()
	require.False(t, ks.IsReady())
	require.NoError(t, ks.AddJWK(jwk))
	require.True(t, ks.IsReady())
	require.Len(t, ks.PublicJWKS().Keys, 1)

	_, err = ks.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	_, err = jwtx.JWK{Kty: "RSA"}.PublicKey()
	require.Error(t, err)
}
