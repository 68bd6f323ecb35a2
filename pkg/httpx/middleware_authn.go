package httpx

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/sigil/pkg/slogx"
)

// HeaderToken is the canonical request header carrying the API token.
const HeaderToken = "X-Sigil-Token"

// TokenAuthMiddleware guards routes with a single static API token, compared
// in constant time. Callers send the token in X-Sigil-Token or as a bearer
// token; issuing and rotating the token is deployment policy, not something
// the engine decides.
func TokenAuthMiddleware(token string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			presented := r.Header.Get(HeaderToken)
			if presented == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
					presented = strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
				}
			}
			if presented == "" {
				writeBearerError(w, "missing api token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				log.Warn("api token rejected", "remote_addr", r.RemoteAddr)
				writeBearerError(w, "invalid api token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string][]string{"errors": {desc}})
}
