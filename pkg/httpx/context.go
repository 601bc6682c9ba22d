package httpx

import (
	"context"

	"github.com/aussiebroadwan/chambers/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyIdentityID ctxKey = "identity_id"
	CtxKeyClaims     ctxKey = "claims"
)

// IdentityIDFromContext returns the authenticated identity id, if any.
func IdentityIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyIdentityID).(string)
	return v, ok && v != ""
}

// WithIdentityID stores the authenticated identity id. Both the bearer and the
// cookie session paths use it so rate limiting can key on the caller.
func WithIdentityID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyIdentityID, id)
}

// ClaimsFromContext returns the verified bearer token claims.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
