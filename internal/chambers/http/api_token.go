package http

import (
	"errors"
	"mime"
	"net/http"

	"github.com/aussiebroadwan/chambers/internal/chambers/service"
	"github.com/aussiebroadwan/chambers/pkg/chambersdk"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/aussiebroadwan/chambers/pkg/slogx"
)

type TokenHandler struct {
	Sessions *service.SessionService
	Tokens   *service.TokenService
}

// ServeHTTP exchanges credentials for an API access token.
//
//	@Summary		Issue an API access token
//	@Description	Checks the judge's credentials and returns a short-lived EdDSA signed JWT.
//	@Description	No browser session is created. There is no refresh token: post the credentials again when the token expires.
//	@Tags			Auth
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string						true	"Username"
//	@Param			password	formData	string						true	"Password"
//	@Success		200			{object}	chambersdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400			{object}	chambersdk.ErrorResponse	"Malformed request"
//	@Failure		401			{object}	chambersdk.ErrorResponse	"invalid_grant"
//	@Failure		429			{object}	chambersdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/v1/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		chambersdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		chambersdk.ErrInvalidRequest.WriteError(w)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		chambersdk.ErrInvalidRequest.WriteError(w)
		return
	}

	ident, err := h.Sessions.VerifyCredentials(ctx, username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		log.Info("token request rejected", "username", username)
		chambersdk.ErrInvalidGrant.WriteError(w)
		return
	}
	if err != nil {
		log.Error("token request failed", "err", err)
		chambersdk.ErrServerError.WriteError(w)
		return
	}

	token, ttl, err := h.Tokens.Issue(ident)
	if err != nil {
		log.Error("failed to sign access token", "err", err)
		chambersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chambersdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}
