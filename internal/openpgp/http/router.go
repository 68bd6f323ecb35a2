package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/service"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
	"github.com/aussiebroadwan/sigil/pkg/httpx"
	"github.com/aussiebroadwan/sigil/pkg/slogx"

	_ "github.com/aussiebroadwan/sigil/api/openpgp" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	apiToken     string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store      store.Store
	KeyService *service.Service
}

func NewRouter(
	apiToken, buildVersion string,
	st store.Store,
	svc *service.Service,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		apiToken:     apiToken,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		KeyService:   svc,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		WithMetrics,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerKeys()
	r.registerSubkeys()
	r.registerSigning()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Sigil OpenPGP Service API
//	@version		0.1.0
//	@description	Named OpenPGP key management and detached-signature service: master keys, signing subkeys, and sign/verify over caller-supplied data with time-bounded validity.
//	@description
//	@description				Private key material never leaves the service except through the export endpoint, and only for keys created exportable.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/sigil
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						X-Sigil-Token
//	@description				Static API token. Also accepted as "Bearer {token}" in Authorization.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with the API token gate (when a token is configured) and
// the given rate limit profile.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	mws := make([]httpx.Middleware, 0, 2)
	if r.apiToken != "" {
		mws = append(mws, httpx.TokenAuthMiddleware(r.apiToken))
	}
	mws = append(mws, httpx.RateLimitByIP(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerKeys() {
	h := &KeysHandler{KeyService: r.KeyService}

	// POST /keys/{name} - strict rate limit (key generation burns real CPU)
	r.Mux.Handle("POST /v1/openpgp/keys/{name}",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.StrictLimit))

	// Metadata reads and deletes - lenient rate limit
	r.Mux.Handle("GET /v1/openpgp/keys/{name}",
		r.secured(http.HandlerFunc(h.HandleRead), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/openpgp/keys",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/openpgp/keys/{name}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.LenientLimit))

	// GET /export/{name} - moderate rate limit (hands out private material)
	r.Mux.Handle("GET /v1/openpgp/export/{name}",
		r.secured(http.HandlerFunc(h.HandleExport), httpx.ModerateLimit))
}

func (r *Router) registerSubkeys() {
	h := &SubkeysHandler{KeyService: r.KeyService}

	// POST /keys/{name}/subkeys - strict rate limit (key generation)
	r.Mux.Handle("POST /v1/openpgp/keys/{name}/subkeys",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.StrictLimit))

	r.Mux.Handle("GET /v1/openpgp/keys/{name}/subkeys",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/openpgp/keys/{name}/subkeys/{keyID}",
		r.secured(http.HandlerFunc(h.HandleRead), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/openpgp/keys/{name}/subkeys/{keyID}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.LenientLimit))
}

func (r *Router) registerSigning() {
	h := &SigningHandler{KeyService: r.KeyService}

	// Sign and verify - moderate rate limit (CPU-bound but routine traffic)
	r.Mux.Handle("POST /v1/openpgp/sign/{name}",
		r.secured(http.HandlerFunc(h.HandleSign), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/openpgp/verify/{name}",
		r.secured(http.HandlerFunc(h.HandleVerify), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	metricsHandler, err := RegisterMetrics()
	if err != nil {
		r.logger.Error("failed to register metrics", "error", err)
		return
	}
	r.Mux.Handle("GET /metrics",
		httpx.Chain(metricsHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
