package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/pkg/chambersdk"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/aussiebroadwan/chambers/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database connection and that an API signing key is loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	chambersdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	chambersdk.HealthResponse	"degraded"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &chambersdk.HealthChecks{Database: "ok", Signer: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, chambersdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
