package http

import (
	"net/http"

	"github.com/aussiebroadwan/chambers/pkg/chambersdk"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/aussiebroadwan/chambers/pkg/jwtx"
)

// JWKSHandler publishes the keys that verify API tokens.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify API access tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	chambersdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, chambersdk.JWKSResponse(keys.PublicJWKS()))
	}
}
