package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/service"
	"github.com/aussiebroadwan/chambers/internal/chambers/store"
	"github.com/aussiebroadwan/chambers/pkg/httpx"
	"github.com/aussiebroadwan/chambers/pkg/jwtx"
	"github.com/aussiebroadwan/chambers/pkg/slogx"

	_ "github.com/aussiebroadwan/chambers/api/chambers" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	renderer     *Renderer

	store          store.Store
	Cookies        CookieConfig
	SessionService *service.SessionService
	CaseService    *service.CaseService
	TokenService   *service.TokenService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		renderer:     MustNewRenderer(),
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerAPI()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/",
		httpx.Chain(httpSwagger.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Chambers Case Desk API
//	@version		0.1.0
//	@description	JSON API for judges to read their assigned cases and build legal search links.
//	@description
//	@description				Access tokens are EdDSA signed JWTs obtained from POST /v1/token and verifiable with the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/chambers
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	login := &LoginHandler{
		Sessions: r.SessionService,
		Cookies:  r.Cookies,
		Renderer: r.renderer,
	}

	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(login.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Credential checks are limited per address and username.
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(login.HandlePost),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	pages := &PagesHandler{Cases: r.CaseService, Renderer: r.renderer}
	secured := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			RequireSession(r.SessionService, r.Cookies, r.renderer),
			httpx.RateLimitByIdentity(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /logout", secured(login.HandleLogout))
	r.Mux.Handle("GET /{$}", secured(pages.HandleDashboard))
	r.Mux.Handle("GET /cases", secured(pages.HandleCases))
	r.Mux.Handle("GET /case/{id}", secured(pages.HandleCaseDetails))
	r.Mux.Handle("POST /search-legal", secured(pages.HandleSearchLegal))
	r.Mux.Handle("GET /cause-lists", secured(pages.HandleCauseLists))
	r.Mux.Handle("GET /legal-research", secured(pages.HandleLegalResearch))

	// Everything else is a 404 page, for logged in judges and anonymous
	// visitors alike.
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		r.renderer.NotFound(w, req, "")
	})
}

func (r *Router) registerAPI() {
	tokens := &TokenHandler{Sessions: r.SessionService, Tokens: r.TokenService}
	r.Mux.Handle("POST /v1/token",
		httpx.Chain(tokens,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	api := &APIHandler{Store: r.store, Cases: r.CaseService}
	secured := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/me", secured(api.HandleMe))
	r.Mux.Handle("GET /v1/cases", secured(api.HandleListCases))
	r.Mux.Handle("GET /v1/cases/{id}", secured(api.HandleGetCase))
	r.Mux.Handle("GET /v1/legal-search", secured(api.HandleLegalSearch))

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
