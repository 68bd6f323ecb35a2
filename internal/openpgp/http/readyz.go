package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
	"github.com/aussiebroadwan/sigil/pkg/httpx"
	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and the key store connection status
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	sigilsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	sigilsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &sigilsdk.HealthChecks{
			Store: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check key store connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := sigilsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
