package chambersdk

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/stretchr/testify/require"
)

// stubServer issues tokens with the given lifetime and counts token requests.
func stubServer(t *testing.T, expiresIn int, tokenCalls *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			ErrInvalidRequest.WriteError(w)
			return
		}
		if r.PostFormValue("password") != "secret" {
			ErrInvalidGrant.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, TokenResponse{
			AccessToken: "token-" + r.PostFormValue("username"),
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		})
	})
	mux.HandleFunc("GET /v1/cases", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-judge1" {
			ErrInvalidToken.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, CaseListResponse{
			Cases: []CaseResponse{{ID: "1", CaseNumber: "CRL/2024/125"}},
		})
	})
	mux.HandleFunc("GET /v1/cases/{id}", func(w http.ResponseWriter, r *http.Request) {
		ErrNotFound.WriteError(w)
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := stubServer(t, 900, &calls)
	client := NewClient(srv.URL + "/")

	sess, err := client.Authenticate(t.Context(), "judge1", "secret")
	require.NoError(t, err)
	require.Equal(t, "token-judge1", sess.AccessToken())

	list, err := sess.ListCases(t.Context())
	require.NoError(t, err)
	require.Len(t, list.Cases, 1)
	require.Equal(t, int32(1), calls.Load())
}

func TestAuthenticateRejected(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := stubServer(t, 900, &calls)

	_, err := NewClient(srv.URL).Authenticate(t.Context(), "judge1", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, ErrorCodeInvalidGrant, apiErr.Code)
}

func TestSessionRenewsStaleToken(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	// Tokens shorter than the expiry buffer are stale as soon as they arrive.
	srv := stubServer(t, 1, &calls)

	sess, err := NewClient(srv.URL).Authenticate(t.Context(), "judge1", "secret")
	require.NoError(t, err)

	_, err = sess.ListCases(t.Context())
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())
}

func TestErrorDecoding(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := stubServer(t, 900, &calls)
	client := NewClient(srv.URL)

	sess, err := client.Authenticate(t.Context(), "judge1", "secret")
	require.NoError(t, err)

	_, err = sess.GetCase(t.Context(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, ErrorCodeNotFound, apiErr.Code)

	// A body without an error code still becomes an APIError.
	_, err = client.GetReadiness(t.Context())
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}
