package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/aussiebroadwan/chambers/internal/chambers/service"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/aussiebroadwan/chambers/pkg/slogx"
)

// SessionCookieName is the browser session cookie.
const SessionCookieName = "chambers_session"

type identityCtxKey struct{}

func withIdentity(ctx context.Context, ident domain.Identity) context.Context {
	ctx = context.WithValue(ctx, identityCtxKey{}, &ident)
	return httpx.WithIdentityID(ctx, ident.ID)
}

// identityFromContext returns the logged in identity or nil.
func identityFromContext(ctx context.Context) *domain.Identity {
	ident, _ := ctx.Value(identityCtxKey{}).(*domain.Identity)
	return ident
}

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

func (c CookieConfig) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c CookieConfig) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// RequireSession resolves the session cookie to an identity and stores it in
// the request context. Requests without a live session are redirected to the
// login page.
func RequireSession(sessions *service.SessionService, cookies CookieConfig, rd *Renderer) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)

			ident, err := sessions.CurrentIdentity(r.Context(), token)
			if errors.Is(err, service.ErrUnauthenticated) {
				if token != "" {
					cookies.clear(w)
				}
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if err != nil {
				rd.ServerError(w, r, err)
				return
			}

			ctx := withIdentity(r.Context(), ident)
			ctx = slogx.With(ctx, "identity_id", ident.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
